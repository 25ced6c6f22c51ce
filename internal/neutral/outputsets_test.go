package neutral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractOutputSets(t *testing.T) {
	rec := []string{
		"1 0 0 0 0 0",
		"Step One",
		"l2",
		"l3",
		"0.01 0 0",
		"l5",
	}
	blocks := map[int][]Block{450: {{ID: 450, Lines: rec}}}
	sets := ExtractOutputSets(blocks, nil)
	require.Len(t, sets, 1)
	require.Equal(t, 1, sets[0].ID)
	require.Equal(t, "Step One", sets[0].Title)
	require.InDelta(t, 0.01, sets[0].Value, 1e-12)
}

func TestExtractOutputSets_Multiple(t *testing.T) {
	var lines []string
	lines = append(lines, "1 0 0 0 0 0", "Step One", "l2", "l3", "0.01", "l5")
	lines = append(lines, "2 0 0 0 0 0", "Step Two", "l2", "l3", "0.02", "l5")
	blocks := map[int][]Block{450: {{ID: 450, Lines: lines}}}
	sets := ExtractOutputSets(blocks, nil)
	require.Len(t, sets, 2)
	require.Equal(t, 0.02, sets[1].Value)
}
