// Package services implements the core use cases over the driven
// ports: the quality and standardization engine, the data source
// registry, and the background quality scheduler.
//
// Services receive their stores by constructor injection and hold no
// ambient state, so every service is testable against the memory
// adapters.
package services
