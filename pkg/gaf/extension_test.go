package gaf_test

import (
	"testing"

	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtensions(t *testing.T) {
	got, err := gaf.ParseExtensions("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = gaf.ParseExtensions("part_of(CL:0000576)")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0], 1)
	assert.Equal(t, "part_of", got[0][0].Relation)
	assert.Equal(t, "CL:0000576", got[0][0].Target)

	// Pipe separates groups, comma separates units within a group.
	got, err = gaf.ParseExtensions(
		"part_of(CL:0000576),occurs_in(GO:0005737)|part_of(UBERON:0002107)")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 2)
	assert.Len(t, got[1], 1)
	assert.Equal(t,
		"part_of(CL:0000576),occurs_in(GO:0005737)", got[0].String())

	for _, raw := range []string{"part_of", "part_of(", "(CL:0000576)"} {
		_, err := gaf.ParseExtensions(raw)
		assert.Error(t, err, "extension %q", raw)
	}
}
