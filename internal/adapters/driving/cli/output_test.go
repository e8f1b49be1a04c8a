package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

func TestOutputTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputTable(rootCmd, nil, nil)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No identifiers to resolve")
}

func TestOutputTable_AlignsColumns(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	identifiers := []string{"P62988", "P12345_P54321"}
	results := map[string]domain.MappingResult{
		"P62988":        {CanonicalIDs: []string{"P0CG47", "P0CG48"}, State: "demerged"},
		"P12345_P54321": {CanonicalIDs: []string{"P12345"}, State: "composite:resolved|P12345:primary|P54321:obsolete"},
	}

	err := outputTable(rootCmd, identifiers, results)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, out, "STATE")
	assert.Contains(t, out, "P0CG47, P0CG48")
	assert.Contains(t, out, "composite:resolved|P12345:primary|P54321:obsolete")
}

func TestOutputCSV_QuotesNothingForPlainStates(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	identifiers := []string{"P01308"}
	results := map[string]domain.MappingResult{
		"P01308": {CanonicalIDs: []string{"P01308"}, State: "primary"},
	}

	err := outputCSV(rootCmd, identifiers, results)

	require.NoError(t, err)
	assert.Equal(t, "input,state,canonical_ids\nP01308,primary,P01308\n", buf.String())
}

func TestOutputCSV_PreservesInputOrder(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	identifiers := []string{"Z", "A"}
	results := map[string]domain.MappingResult{
		"Z": {State: "obsolete"},
		"A": {CanonicalIDs: []string{"A"}, State: "primary"},
	}

	err := outputCSV(rootCmd, identifiers, results)

	require.NoError(t, err)
	out := buf.String()
	assert.Less(t, len("input,state,canonical_ids\n"), len(out))
	zPos := bytes.Index(buf.Bytes(), []byte("Z,obsolete"))
	aPos := bytes.Index(buf.Bytes(), []byte("A,primary"))
	require.GreaterOrEqual(t, zPos, 0)
	require.GreaterOrEqual(t, aPos, 0)
	assert.Less(t, zPos, aPos)
}

func TestOutputJSON_IncludesStates(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	results := map[string]domain.MappingResult{
		"P62988": {CanonicalIDs: []string{"P0CG47", "P0CG48"}, State: "demerged"},
		"Q00000": {State: "obsolete"},
	}

	err := outputJSON(rootCmd, results)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "\"state\": \"demerged\"")
	assert.Contains(t, out, "\"P0CG47\"")
	// Obsolete entries omit canonical_ids entirely.
	assert.Contains(t, out, "\"state\": \"obsolete\"")
	assert.NotContains(t, out, "\"Q00000\": {\n    \"canonical_ids\"")
}

func TestStateStyle(t *testing.T) {
	assert.Equal(t, errorStyle, stateStyle(domain.MappingResult{State: "error:batch_processing_failed:timeout"}))
	assert.Equal(t, resolvedStyle, stateStyle(domain.MappingResult{CanonicalIDs: []string{"P01308"}, State: "primary"}))
	assert.Equal(t, obsoleteStyle, stateStyle(domain.MappingResult{State: "obsolete"}))
}
