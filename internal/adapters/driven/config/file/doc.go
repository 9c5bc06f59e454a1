// Package file provides a TOML file-based implementation of the
// configuration store. The store persists to ~/.stratkb/config.toml by
// default and can watch the file for external edits, reloading
// automatically.
package file
