// Package meshbuild assembles a Mesh from the typed records neutral.Extract*
// produces: one unstructured grid with stable node/element ID-to-index
// mappings and the per-cell arrays every time-step writer attaches,
// grounded on mesh_common.go's Mesh struct and BuildConnectivity pattern.
package meshbuild

import (
	"sort"
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
	"github.com/notargets/femapvtk/internal/neutral"
	"github.com/notargets/femapvtk/internal/topology"
)

// Mesh owns a point buffer, cell connectivity, and the two ID-to-index
// mappings the rest of the pipeline depends on. Built once, then shared
// read-only by every time-step worker (each clones Points before mutating
// it for displacement).
type Mesh struct {
	// Points is a flat array of length 3*len(Points)/3, ordered by ascending
	// external node ID.
	Points []float64

	// NodeIndex maps external node ID -> point index (0-based).
	NodeIndex map[int]int

	// Cells holds the resolved node-index connectivity for each emitted
	// cell, in cell-index order.
	Cells [][]int

	// ElementIndex maps external element ID -> cell index (0-based).
	ElementIndex map[int]int

	// Per-cell arrays, parallel to Cells.
	ElementID  []int
	PropertyID []int
	MaterialID []int
	TopologyID []int
	VTKKind    []int

	// UniqueProps lists distinct property IDs in order of first appearance
	// among accepted elements.
	UniqueProps []int
}

// Build implements §4.4: points in ascending external-ID order, one cell
// per valid element (skipping unknown topologies, short connectivity, and
// dangling node references), the four attached per-cell arrays plus the
// per-cell VTK cell-type code (VTKKind), and the ordered set of unique
// property IDs.
func Build(nodes []neutral.Node, elements []neutral.Element, properties []neutral.Property, force2D bool, diag *diagnostics.Log) *Mesh {
	sorted := make([]neutral.Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	m := &Mesh{
		NodeIndex:    make(map[int]int, len(sorted)),
		ElementIndex: make(map[int]int, len(elements)),
	}
	m.Points = make([]float64, 0, 3*len(sorted))
	for idx, n := range sorted {
		m.NodeIndex[n.ID] = idx
		m.Points = append(m.Points, n.X, n.Y, n.Z)
	}

	matByProp := make(map[int]int, len(properties))
	for _, p := range properties {
		matByProp[p.ID] = p.MaterialID
	}

	seenProp := make(map[int]bool)

	for _, e := range elements {
		top, origCode, ok := topology.Resolve(e.Topology, force2D)
		if !ok {
			if diag != nil {
				diag.Record(diagnostics.KindUnknownTopology, strconv.Itoa(e.ID), "unknown topology code")
			}
			continue
		}
		if len(e.Nodes) < top.NumNodes {
			if diag != nil {
				diag.Record(diagnostics.KindShortConnectivity, strconv.Itoa(e.ID), "fewer nodes than topology requires")
			}
			continue
		}

		prefix := e.Nodes[:top.NumNodes]
		indices := make([]int, 0, len(prefix))
		missing := false
		for _, nodeID := range prefix {
			idx, found := m.NodeIndex[nodeID]
			if !found {
				missing = true
				if diag != nil {
					diag.Record(diagnostics.KindMissingNode, strconv.Itoa(e.ID), "element references unknown node id")
				}
				break
			}
			indices = append(indices, idx)
		}
		if missing {
			continue
		}

		cellIndex := len(m.Cells)
		m.Cells = append(m.Cells, indices)
		m.ElementIndex[e.ID] = cellIndex

		m.ElementID = append(m.ElementID, e.ID)
		m.PropertyID = append(m.PropertyID, e.PropID)
		m.MaterialID = append(m.MaterialID, matByProp[e.PropID])
		m.TopologyID = append(m.TopologyID, origCode)
		m.VTKKind = append(m.VTKKind, top.VTKKind)

		if !seenProp[e.PropID] {
			seenProp[e.PropID] = true
			m.UniqueProps = append(m.UniqueProps, e.PropID)
		}
	}

	return m
}

// NumPoints returns the number of points in the mesh.
func (m *Mesh) NumPoints() int { return len(m.Points) / 3 }

// NumCells returns the number of emitted cells.
func (m *Mesh) NumCells() int { return len(m.Cells) }

// ClonePoints returns an independent copy of the point buffer, for a worker
// that needs to apply a per-step displacement without mutating the shared
// mesh.
func (m *Mesh) ClonePoints() []float64 {
	out := make([]float64, len(m.Points))
	copy(out, m.Points)
	return out
}

