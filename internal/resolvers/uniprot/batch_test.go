package uniprot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindows(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	got := windows(ids, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, got)
}

func TestWindows_ExactFit(t *testing.T) {
	got := windows([]string{"a", "b", "c", "d"}, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestWindows_Empty(t *testing.T) {
	assert.Nil(t, windows(nil, 50))
}

func TestWindows_InvalidSizeFallsBack(t *testing.T) {
	ids := make([]string, DefaultBatchSize+1)
	for i := range ids {
		ids[i] = "x"
	}
	got := windows(ids, 0)
	assert.Len(t, got, 2)
	assert.Len(t, got[0], DefaultBatchSize)
}

func TestBuildQuery(t *testing.T) {
	got := buildQuery(FieldSecondaryAccession, []string{"Q99895", "P0CG05"})
	assert.Equal(t, "(sec_acc:Q99895) OR (sec_acc:P0CG05)", got)
}

func TestBuildQuery_SingleAccession(t *testing.T) {
	got := buildQuery(FieldPrimaryAccession, []string{"P01308"})
	assert.Equal(t, "(accession:P01308)", got)
}
