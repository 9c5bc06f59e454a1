package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestSearchCmd_SearchesAllCollections(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ctx := context.Background()
	_, err := connectorSet.Megatrends.Create(ctx, domain.CreateMegatrend{Title: "Hydrogen economy"})
	require.NoError(t, err)
	_, err = connectorSet.Seeds.Create(ctx, domain.CreateSeed{Name:"Hydrogen storage pilot"})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "hydrogen"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Results:")
	assert.Contains(t, buf.String(), "Hydrogen economy")
	assert.Contains(t, buf.String(), "Hydrogen storage pilot")
	assert.Contains(t, buf.String(), "Total: 2 results")
}

func TestSearchCmd_KindFlagRestrictsSearch(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ctx := context.Background()
	_, err := connectorSet.Megatrends.Create(ctx, domain.CreateMegatrend{Title: "Hydrogen economy"})
	require.NoError(t, err)
	_, err = connectorSet.Seeds.Create(ctx, domain.CreateSeed{Name:"Hydrogen storage pilot"})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--kind", "seeds", "hydrogen"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchKind = ""
	}()

	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Hydrogen storage pilot")
	assert.NotContains(t, buf.String(), "Hydrogen economy")
}

func TestSearchCmd_UnknownKind(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--kind", "documents", "x"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchKind = ""
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ctx := context.Background()
	created, err := connectorSet.Seeds.Create(ctx, domain.CreateSeed{Name:"Solid-state battery"})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "battery"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err = rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"id\"")
	assert.Contains(t, buf.String(), created.ID)
	assert.Contains(t, buf.String(), "\"seeds\"")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	oldSet := connectorSet
	connectorSet = nil
	defer func() {
		connectorSet = oldSet
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "test"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connectors not configured")
}

func TestOutputSearchTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, nil)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}
