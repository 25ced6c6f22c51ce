package fields

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/femapvtk/internal/meshbuild"
	"github.com/notargets/femapvtk/internal/neutral"
)

func twoPointMesh() *meshbuild.Mesh {
	nodes := []neutral.Node{{ID: 1}, {ID: 2}}
	elements := []neutral.Element{{ID: 100, PropID: 1, Topology: 0, Nodes: []int{1, 2}}}
	return meshbuild.Build(nodes, elements, nil, false, nil)
}

func TestResolveChannel_NodalVectorPlusMagnitude(t *testing.T) {
	mesh := twoPointMesh()
	vx := neutral.OutputVector{EntType: neutral.EntityNodal, Results: map[int]float64{1: 3, 2: 0}}
	vy := neutral.OutputVector{EntType: neutral.EntityNodal, Results: map[int]float64{1: 4, 2: 0}}
	vz := neutral.OutputVector{EntType: neutral.EntityNodal, Results: map[int]float64{1: 0, 2: 0}}
	skip := neutral.OutputVector{EntType: neutral.EntityNodal, Results: map[int]float64{1: 5, 2: 5}}

	res := ResolveChannel(Policies["force"], []neutral.OutputVector{vx, vy, vz, skip}, mesh, nil)

	require.Equal(t, []float64{3, 4, 0, 0, 0, 0}, res.PointData["F Nodal-Vec (N/m^3)"])
	require.InDelta(t, 5.0, res.PointData["F Nodal-Mag (N/m^3)"][0], 1e-9)
	require.InDelta(t, 0.0, res.PointData["F Nodal-Mag (N/m^3)"][1], 1e-9)
	// cell-averaged variant for the single 2-node line cell.
	require.InDelta(t, 1.5, res.CellData["F Nodal-Vec (N/m^3)"][0], 1e-9)
}

func TestResolveChannel_ElementalDirectNoPointArray(t *testing.T) {
	mesh := twoPointMesh()
	vx := neutral.OutputVector{EntType: neutral.EntityElemental, Results: map[int]float64{100: 1}}
	vy := neutral.OutputVector{EntType: neutral.EntityElemental, Results: map[int]float64{100: 0}}
	vz := neutral.OutputVector{EntType: neutral.EntityElemental, Results: map[int]float64{100: 0}}
	skip := neutral.OutputVector{EntType: neutral.EntityElemental, Results: map[int]float64{100: 0}}

	res := ResolveChannel(Policies["force"], []neutral.OutputVector{vx, vy, vz, skip}, mesh, nil)

	_, hasPoint := res.PointData["F Nodal-Vec (N/m^3)"]
	require.False(t, hasPoint)
	require.Equal(t, []float64{1, 0, 0}, res.CellData["F Nodal-Vec (N/m^3)"])
	require.InDelta(t, 1.0, res.CellData["F Nodal-Mag (N/m^3)"][0], 1e-9)
}

func TestResolveChannel_HeatHasNoVectorGrouping(t *testing.T) {
	mesh := twoPointMesh()
	density := neutral.OutputVector{EntType: neutral.EntityNodal, Results: map[int]float64{1: 10, 2: 20}}
	total := neutral.OutputVector{EntType: neutral.EntityElemental, Results: map[int]float64{100: 99}}

	res := ResolveChannel(Policies["heat"], []neutral.OutputVector{density, total}, mesh, nil)

	require.Equal(t, []float64{10, 20}, res.PointData["Heat Density (W/m^3)"])
	require.Equal(t, []float64{99}, res.CellData["Heat (W)"])
}

func TestMagnitudes_ZeroVectorIsZero(t *testing.T) {
	out := magnitudes([]float64{0, 0, 0})
	require.Len(t, out, 1)
	require.False(t, math.IsNaN(out[0]))
	require.Equal(t, 0.0, out[0])
}
