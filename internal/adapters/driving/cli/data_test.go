package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDataStandardizeCmd_AppliesRules(t *testing.T) {
	path := writeTestFile(t, "record.json", `{"title": "  Remote   Healthcare  ", "category": "SOCIETY"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"data", "standardize", path,
		"--rule", "title=normalize", "--rule", "category=lowercase",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		dataRules = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Remote Healthcare"`)
	assert.Contains(t, buf.String(), `"society"`)
}

func TestDataStandardizeCmd_RejectsMalformedRule(t *testing.T) {
	path := writeTestFile(t, "record.json", `{"title": "x"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"data", "standardize", path, "--rule", "title"})
	defer func() {
		rootCmd.SetArgs(nil)
		dataRules = nil
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected field=action")
}

func TestDataValidateCmd_ValidRecord(t *testing.T) {
	path := writeTestFile(t, "record.json", `{"title": "Aging Population", "confidence": 0.8}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"data", "validate", path,
		"--required", "title", "--type", "confidence=number",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		dataRequired = nil
		dataTypes = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Record is valid")
}

func TestDataValidateCmd_ReportsErrors(t *testing.T) {
	path := writeTestFile(t, "record.json", `{"confidence": "high"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"data", "validate", path,
		"--required", "title", "--type", "confidence=number",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		dataRequired = nil
		dataTypes = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Record is invalid")
	assert.Contains(t, buf.String(), "REQUIRED_FIELD")
	assert.Contains(t, buf.String(), "TYPE_MISMATCH")
}

func TestDataDedupeCmd_FindsDuplicates(t *testing.T) {
	path := writeTestFile(t, "records.json", `[
		{"title": "AI", "category": "tech"},
		{"title": "AI", "category": "tech"},
		{"title": "Aging", "category": "society"}
	]`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"data", "dedupe", path,
		"--key", "title", "--key", "category",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		dataKeys = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1 duplicate groups")
	assert.Contains(t, buf.String(), "Unique records: 2 of 3")
}

func TestDataDedupeCmd_NoDuplicates(t *testing.T) {
	path := writeTestFile(t, "records.json", `[{"title": "AI"}, {"title": "Aging"}]`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"data", "dedupe", path, "--key", "title"})
	defer func() {
		rootCmd.SetArgs(nil)
		dataKeys = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No duplicates found in 2 records")
}

func TestDataCmd_MissingFile(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"data", "standardize", "/nonexistent/record.json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
