// Package vtkio writes the VTK XML time-series bundle: one .vtu per
// property per step, one .vtm multi-block index per step, and a single
// top-level .pvd collection.
package vtkio

import (
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/notargets/femapvtk/internal/meshbuild"
)

// GroupCellsByProperty partitions mesh cell indices by property ID using a
// sparse incidence matrix: row = property, column = cell, a nonzero entry
// means that cell carries that property. Grounded on utils/sparse.go's
// DOK/ToCSR/At wrapper around github.com/james-bowman/sparse, reused here
// for exactly the set-membership query it exists for instead of a
// hand-rolled multimap.
func GroupCellsByProperty(mesh *meshbuild.Mesh) map[int][]int {
	groups := make(map[int][]int, len(mesh.UniqueProps))

	nr := len(mesh.UniqueProps)
	nc := mesh.NumCells()
	if nr == 0 || nc == 0 {
		return groups
	}

	propRow := make(map[int]int, nr)
	for i, p := range mesh.UniqueProps {
		propRow[p] = i
	}

	incidence := sparse.NewDOK(nr, nc)
	for cellIdx, propID := range mesh.PropertyID {
		incidence.Set(propRow[propID], cellIdx, 1)
	}
	csr := incidence.ToCSR()

	for _, propID := range mesh.UniqueProps {
		row := propRow[propID]
		var cells []int
		for c := 0; c < nc; c++ {
			if csr.At(row, c) != 0 {
				cells = append(cells, c)
			}
		}
		sort.Ints(cells)
		groups[propID] = cells
	}
	return groups
}
