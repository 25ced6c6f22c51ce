package neutral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractElements_Basic(t *testing.T) {
	rec := []string{
		"10 0 7 0 2 0 0",
		"1 2 3 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0",
		"l3", "l4", "l5", "l6",
	}
	blocks := map[int][]Block{404: {{ID: 404, Lines: rec}}}
	elems := ExtractElements(blocks, nil)
	require.Len(t, elems, 1)
	e := elems[0]
	require.Equal(t, 10, e.ID)
	require.Equal(t, 7, e.PropID)
	require.Equal(t, 2, e.Topology)
	require.Equal(t, []int{1, 2, 3}, e.Nodes)
}

func TestExtractElements_ShortConnectivityKeepsPartialList(t *testing.T) {
	// Topology 8 needs 8 nodes but only 6 are present; extraction itself
	// still yields the short node list - it is the mesh builder's job to
	// discard elements whose prefix is too short.
	rec := []string{
		"11 0 3 0 8 0 0",
		"1 2 3 4 5 6 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0",
		"l3", "l4", "l5", "l6",
	}
	blocks := map[int][]Block{404: {{ID: 404, Lines: rec}}}
	elems := ExtractElements(blocks, nil)
	require.Len(t, elems, 1)
	require.Len(t, elems[0].Nodes, 6)
}
