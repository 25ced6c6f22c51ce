package vtkio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/notargets/femapvtk/internal/meshbuild"
)

// AttachedCellArrays are the four always-present per-cell arrays (§6).
type AttachedCellArrays struct {
	ElementID  []int
	PropertyID []int
	MaterialID []int
	TopologyID []int
}

// WriteVTU writes one property sub-block's unstructured grid. All mesh
// points are always included (points are shared across sub-blocks per
// §4.7's sparse-grouping design); cellIndices selects which cells this
// sub-block carries, and every *Data array is pre-sized to the full
// point/cell count of mesh, indexed consistently with it.
func WriteVTU(path string, mesh *meshbuild.Mesh, cellIndices []int, attached AttachedCellArrays, pointData, cellData map[string][]float64, ascii bool) error {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0"?>` + "\n")
	fmt.Fprintf(&b, `<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">`+"\n")
	b.WriteString("<UnstructuredGrid>\n")
	fmt.Fprintf(&b, `<Piece NumberOfPoints="%d" NumberOfCells="%d">`+"\n", mesh.NumPoints(), len(cellIndices))

	b.WriteString("<Points>\n")
	writeFloatArray(&b, "", mesh.Points, 3, ascii)
	b.WriteString("</Points>\n")

	b.WriteString("<Cells>\n")
	writeConnectivity(&b, mesh, cellIndices, ascii)
	b.WriteString("</Cells>\n")

	b.WriteString("<PointData>\n")
	for _, name := range sortedKeys(pointData) {
		arr := pointData[name]
		writeFloatArray(&b, name, arr, numComponents(arr, mesh.NumPoints()), ascii)
	}
	b.WriteString("</PointData>\n")

	b.WriteString("<CellData>\n")
	writeIntArray(&b, "ElementID", subsetInt(attached.ElementID, cellIndices), false, ascii)
	writeIntArray(&b, "PropertyID", subsetInt(attached.PropertyID, cellIndices), false, ascii)
	writeIntArray(&b, "MaterialID", subsetInt(attached.MaterialID, cellIndices), false, ascii)
	writeIntArray(&b, "TopologyID", subsetInt(attached.TopologyID, cellIndices), false, ascii)
	for _, name := range sortedKeys(cellData) {
		arr := cellData[name]
		writeFloatArray(&b, name, subsetFloatByCells(arr, cellIndices, numComponents(arr, len(attached.ElementID))), numComponents(arr, len(attached.ElementID)), ascii)
	}
	b.WriteString("</CellData>\n")

	b.WriteString("</Piece>\n")
	b.WriteString("</UnstructuredGrid>\n")
	b.WriteString("</VTKFile>\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeConnectivity(b *strings.Builder, mesh *meshbuild.Mesh, cellIndices []int, ascii bool) {
	var conn, offsets, types []int
	offset := 0
	for _, ci := range cellIndices {
		cell := mesh.Cells[ci]
		conn = append(conn, cell...)
		offset += len(cell)
		offsets = append(offsets, offset)
		types = append(types, mesh.VTKKind[ci])
	}
	writeIntArray(b, "connectivity", conn, false, ascii)
	writeIntArray(b, "offsets", offsets, false, ascii)
	writeIntArray(b, "types", types, true, ascii)
}

// numComponents infers 1 or 3 components from array length versus the
// full entity count, since pointData/cellData may store either scalars or
// flattened 3-vectors.
func numComponents(arr []float64, entityCount int) int {
	if entityCount > 0 && len(arr) == entityCount*3 {
		return 3
	}
	return 1
}

func subsetInt(full []int, indices []int) []int {
	out := make([]int, len(indices))
	for i, ci := range indices {
		out[i] = full[ci]
	}
	return out
}

func subsetFloatByCells(full []float64, indices []int, numComponents int) []float64 {
	out := make([]float64, 0, len(indices)*numComponents)
	for _, ci := range indices {
		out = append(out, full[ci*numComponents:ci*numComponents+numComponents]...)
	}
	return out
}

func sortedKeys(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
