package gaf_test

import (
	"testing"

	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForVersion(t *testing.T) {
	tests := []struct {
		version string
		numCols int
	}{
		{"1.0", 15},
		{"2.0", 17},
		{"2.1", 17},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			s, err := gaf.ForVersion(tt.version, false)
			require.NoError(t, err)
			assert.Equal(t, tt.numCols, s.NumColumns)
			assert.Len(t, s.Columns, tt.numCols)
			assert.Equal(t, "DB", s.Columns[0])
			assert.Equal(t, "Assigned_By", s.Columns[gaf.ColAssignedBy])
		})
	}
}

func TestForVersionUnknown(t *testing.T) {
	for _, ver := range []string{"", "3.0", "2.2", "gaf"} {
		_, err := gaf.ForVersion(ver, false)
		assert.Error(t, err, "version %q", ver)
	}
}

func TestRequiredOne(t *testing.T) {
	s, err := gaf.ForVersion("2.1", false)
	require.NoError(t, err)
	assert.Equal(t,
		[]int{
			gaf.ColDB, gaf.ColDBID, gaf.ColDBSymbol, gaf.ColGOID,
			gaf.ColEvidenceCode, gaf.ColNS, gaf.ColDBType, gaf.ColDate,
			gaf.ColAssignedBy,
		},
		s.RequiredOne(),
	)

	// Symbol column drops out of the required set when omission is
	// allowed.
	s, err = gaf.ForVersion("2.1", true)
	require.NoError(t, err)
	assert.NotContains(t, s.RequiredOne(), gaf.ColDBSymbol)
	assert.False(t, s.Required(gaf.ColDBSymbol))
	assert.True(t, s.Required(gaf.ColDB))
}

func TestRequiredMarkers(t *testing.T) {
	s, err := gaf.ForVersion("2.1", false)
	require.NoError(t, err)

	required := []int{
		gaf.ColDB, gaf.ColDBID, gaf.ColDBSymbol, gaf.ColGOID,
		gaf.ColDBReference, gaf.ColEvidenceCode, gaf.ColNS,
		gaf.ColDBType, gaf.ColTaxon, gaf.ColDate, gaf.ColAssignedBy,
	}
	for _, col := range required {
		assert.True(t, s.Required(col), "column %d", col)
	}

	optional := []int{
		gaf.ColQualifier, gaf.ColWithFrom, gaf.ColDBName,
		gaf.ColDBSynonym, gaf.ColExtension, gaf.ColGeneProductFormID,
	}
	for _, col := range optional {
		assert.False(t, s.Required(col), "column %d", col)
	}
}
