package meshbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/femapvtk/internal/diagnostics"
	"github.com/notargets/femapvtk/internal/neutral"
)

func TestBuild_MinimalStaticMesh(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0},
	}
	elements := []neutral.Element{
		{ID: 10, PropID: 7, Topology: 2, Nodes: []int{1, 2, 3}},
	}
	props := []neutral.Property{{ID: 7, MaterialID: 1}}

	m := Build(nodes, elements, props, false, nil)

	require.Equal(t, 3, m.NumPoints())
	require.Equal(t, 1, m.NumCells())
	require.Equal(t, []int{10}, m.ElementID)
	require.Equal(t, []int{7}, m.PropertyID)
	require.Equal(t, []int{2}, m.TopologyID)
	require.Equal(t, []int{7}, m.UniqueProps)
}

func TestBuild_DiscardsShortConnectivity(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 1, X: 0, Y: 0, Z: 0}, {ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0}, {ID: 4, X: 1, Y: 1, Z: 0},
		{ID: 5, X: 0, Y: 0, Z: 1}, {ID: 6, X: 1, Y: 0, Z: 1},
	}
	elements := []neutral.Element{
		{ID: 10, PropID: 1, Topology: 8, Nodes: []int{1, 2, 3, 4, 5, 6}},
	}
	diag := &diagnostics.Log{}
	m := Build(nodes, elements, nil, false, diag)

	require.Equal(t, 0, m.NumCells())
	require.Len(t, diag.Entries(), 1)
	require.Equal(t, diagnostics.KindShortConnectivity, diag.Entries()[0].Kind)
	require.Equal(t, "10", diag.Entries()[0].ID)
}

func TestBuild_MissingNodeDiscarded(t *testing.T) {
	nodes := []neutral.Node{{ID: 1, X: 0, Y: 0, Z: 0}, {ID: 2, X: 1, Y: 0, Z: 0}}
	elements := []neutral.Element{
		{ID: 5, PropID: 1, Topology: 0, Nodes: []int{1, 99}},
	}
	diag := &diagnostics.Log{}
	m := Build(nodes, elements, nil, false, diag)
	require.Equal(t, 0, m.NumCells())
	require.Len(t, diag.Entries(), 1)
	require.Equal(t, diagnostics.KindMissingNode, diag.Entries()[0].Kind)
}

func TestBuild_Force2DReduction(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 1, X: 0, Y: 0, Z: 0}, {ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 1, Y: 1, Z: 0}, {ID: 4, X: 0, Y: 1, Z: 0},
		{ID: 5, X: 0, Y: 0, Z: 1}, {ID: 6, X: 1, Y: 0, Z: 1},
		{ID: 7, X: 1, Y: 1, Z: 1}, {ID: 8, X: 0, Y: 1, Z: 1},
	}
	elements := []neutral.Element{
		{ID: 1, PropID: 1, Topology: 8, Nodes: []int{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	m := Build(nodes, elements, nil, true, nil)

	require.Equal(t, 8, m.NumPoints())
	require.Equal(t, 1, m.NumCells())
	require.Len(t, m.Cells[0], 4)
	// TopologyID still records the original hex code, not the reduced one.
	require.Equal(t, []int{8}, m.TopologyID)
}

func TestBuild_UniquePropsInFirstAppearanceOrder(t *testing.T) {
	nodes := []neutral.Node{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
	}
	elements := []neutral.Element{
		{ID: 1, PropID: 9, Topology: 9, Nodes: []int{1}},
		{ID: 2, PropID: 3, Topology: 9, Nodes: []int{2}},
		{ID: 3, PropID: 9, Topology: 9, Nodes: []int{3}},
	}
	m := Build(nodes, elements, nil, false, nil)
	require.Equal(t, []int{9, 3}, m.UniqueProps)
}
