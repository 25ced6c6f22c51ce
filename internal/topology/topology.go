// Package topology maps FEMAP's integer element-shape codes to the VTK
// integer cell-type codes and required node counts needed to emit a valid
// unstructured grid cell, grounded on the teacher's su2ElementTypeMap
// lookup-table pattern in readers/su2_reader.go.
package topology

// Topology describes one FEMAP element shape: the VTK cell-type code to
// write and the number of leading nodes the cell consumes.
type Topology struct {
	VTKKind  int
	NumNodes int
}

// Table is the static FEMAP-topology-code -> Topology mapping from §4.3,
// with VTK cell-type codes taken from the authoritative femap_to_vtu
// reference (vertex=1, line=3, triangle=5, quad tri=22, quad=9,
// quad quad=23, tet=10, quad tet=24, wedge=13, quad wedge=26, hex=12,
// quad hex=25).
var Table = map[int]Topology{
	9:  {VTKKind: 1, NumNodes: 1},
	0:  {VTKKind: 3, NumNodes: 2},
	2:  {VTKKind: 5, NumNodes: 3},
	3:  {VTKKind: 22, NumNodes: 6},
	4:  {VTKKind: 9, NumNodes: 4},
	5:  {VTKKind: 23, NumNodes: 8},
	6:  {VTKKind: 10, NumNodes: 4},
	10: {VTKKind: 24, NumNodes: 10},
	7:  {VTKKind: 13, NumNodes: 6},
	11: {VTKKind: 26, NumNodes: 15},
	8:  {VTKKind: 12, NumNodes: 8},
	12: {VTKKind: 25, NumNodes: 20},
}

// Force2D maps a 3D topology code to its 2D-reduced equivalent: the node
// prefix length shrinks but the cell-type code it maps to also changes.
// Codes absent from this table pass through Table unchanged.
var Force2D = map[int]int{
	8:  4,  // hexahedron -> quadrilateral, nodes[0:4]
	12: 5,  // quadratic hexahedron -> quadratic quadrilateral, nodes[0:8]
	7:  2,  // wedge -> triangle, nodes[0:3]
	11: 3,  // quadratic wedge -> quadratic triangle, nodes[0:6]
}

// Resolve looks up the Topology for code, applying the 2D-reduction variant
// first when force2D is set and code has an entry in Force2D. ok is false
// for an unknown code.
func Resolve(code int, force2D bool) (t Topology, originalCode int, ok bool) {
	originalCode = code
	if force2D {
		if reduced, has := Force2D[code]; has {
			code = reduced
		}
	}
	t, ok = Table[code]
	return t, originalCode, ok
}
