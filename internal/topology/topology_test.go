package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_Passthrough(t *testing.T) {
	top, orig, ok := Resolve(2, false)
	require.True(t, ok)
	require.Equal(t, 2, orig)
	require.Equal(t, Topology{VTKKind: 5, NumNodes: 3}, top)
}

func TestResolve_Force2DReduction(t *testing.T) {
	// Seed scenario 6: hex (8) becomes quad (4) under force_2d, original
	// topology code is preserved separately for the TopologyID array.
	top, orig, ok := Resolve(8, true)
	require.True(t, ok)
	require.Equal(t, 8, orig)
	require.Equal(t, Table[4], top)
}

func TestResolve_UnknownCode(t *testing.T) {
	_, _, ok := Resolve(999, false)
	require.False(t, ok)
}

func TestResolve_Force2DPassthroughForUnmappedCode(t *testing.T) {
	top, orig, ok := Resolve(2, true)
	require.True(t, ok)
	require.Equal(t, 2, orig)
	require.Equal(t, Table[2], top)
}
