package fields

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/femapvtk/internal/diagnostics"
	"github.com/notargets/femapvtk/internal/meshbuild"
	"github.com/notargets/femapvtk/internal/neutral"
)

// Resolved holds the point and cell arrays produced for one channel at one
// step, flattened to one value (or 3 for vector components, stored
// interleaved x,y,z) per point/cell index.
type Resolved struct {
	PointData map[string][]float64
	CellData  map[string][]float64
}

// ResolveChannel walks vectors (a channel's OutputVector records for a
// single step, in source-file order) through policy's slot sequence,
// producing the named arrays in §6's canonical table. Nodal (ent_type=7)
// records produce both a point array and a cell-averaged variant; elemental
// (ent_type=8) records produce only a direct cell array. A slot that writes
// an array name already present replaces it, whatever its entity type.
func ResolveChannel(policy ChannelPolicy, vectors []neutral.OutputVector, mesh *meshbuild.Mesh, diag *diagnostics.Log) Resolved {
	res := Resolved{PointData: map[string][]float64{}, CellData: map[string][]float64{}}

	cursor := 0
	for _, slot := range policy.Slots {
		switch slot.Kind {
		case SlotVector3:
			if cursor+3 > len(vectors) {
				if !slot.Optional && diag != nil {
					diag.Record(diagnostics.KindInconsistentStepAxis, slot.VecName, "channel ended before expected vector triplet")
				}
				cursor = len(vectors)
				continue
			}
			vx, vy, vz := vectors[cursor], vectors[cursor+1], vectors[cursor+2]
			cursor += 3
			resolveVector3(&res, mesh, vx, vy, vz, slot.VecName, slot.MagName)

		case SlotSkipScalar:
			if cursor >= len(vectors) {
				if !slot.Optional && diag != nil {
					diag.Record(diagnostics.KindInconsistentStepAxis, "", "channel ended before expected scalar slot")
				}
				continue
			}
			cursor++

		case SlotScalar:
			if cursor >= len(vectors) {
				if !slot.Optional && diag != nil {
					diag.Record(diagnostics.KindInconsistentStepAxis, slot.ScalarName, "channel ended before expected scalar record")
				}
				continue
			}
			v := vectors[cursor]
			cursor++
			resolveScalar(&res, mesh, v, slot.ScalarName)
		}
	}

	return res
}

func resolveVector3(res *Resolved, mesh *meshbuild.Mesh, vx, vy, vz neutral.OutputVector, vecName, magName string) {
	switch vx.EntType {
	case neutral.EntityNodal:
		pointVec := densePointVector(mesh, vx, vy, vz)
		pointMag := magnitudes(pointVec)
		res.PointData[vecName] = pointVec
		res.PointData[magName] = pointMag
		res.CellData[vecName] = cellAverageVector(mesh, pointVec)
		res.CellData[magName] = magnitudes(res.CellData[vecName])

	case neutral.EntityElemental:
		cellVec := denseCellVector(mesh, vx, vy, vz)
		res.CellData[vecName] = cellVec
		res.CellData[magName] = magnitudes(cellVec)
	}
}

func resolveScalar(res *Resolved, mesh *meshbuild.Mesh, v neutral.OutputVector, name string) {
	switch v.EntType {
	case neutral.EntityNodal:
		pointArr := densePointScalar(mesh, v)
		res.PointData[name] = pointArr
		res.CellData[name] = cellAverageScalar(mesh, pointArr)
	case neutral.EntityElemental:
		res.CellData[name] = denseCellScalar(mesh, v)
	}
}

func densePointScalar(mesh *meshbuild.Mesh, v neutral.OutputVector) []float64 {
	out := make([]float64, mesh.NumPoints())
	for id, val := range v.Results {
		if idx, ok := mesh.NodeIndex[id]; ok {
			out[idx] = val
		}
	}
	return out
}

func denseCellScalar(mesh *meshbuild.Mesh, v neutral.OutputVector) []float64 {
	out := make([]float64, mesh.NumCells())
	for id, val := range v.Results {
		if idx, ok := mesh.ElementIndex[id]; ok {
			out[idx] = val
		}
	}
	return out
}

func densePointVector(mesh *meshbuild.Mesh, vx, vy, vz neutral.OutputVector) []float64 {
	out := make([]float64, mesh.NumPoints()*3)
	for id, val := range vx.Results {
		if idx, ok := mesh.NodeIndex[id]; ok {
			out[3*idx] = val
		}
	}
	for id, val := range vy.Results {
		if idx, ok := mesh.NodeIndex[id]; ok {
			out[3*idx+1] = val
		}
	}
	for id, val := range vz.Results {
		if idx, ok := mesh.NodeIndex[id]; ok {
			out[3*idx+2] = val
		}
	}
	return out
}

func denseCellVector(mesh *meshbuild.Mesh, vx, vy, vz neutral.OutputVector) []float64 {
	out := make([]float64, mesh.NumCells()*3)
	for id, val := range vx.Results {
		if idx, ok := mesh.ElementIndex[id]; ok {
			out[3*idx] = val
		}
	}
	for id, val := range vy.Results {
		if idx, ok := mesh.ElementIndex[id]; ok {
			out[3*idx+1] = val
		}
	}
	for id, val := range vz.Results {
		if idx, ok := mesh.ElementIndex[id]; ok {
			out[3*idx+2] = val
		}
	}
	return out
}

// cellAverageVector averages the 3-component point array over each cell's
// corner node indices.
func cellAverageVector(mesh *meshbuild.Mesh, pointVec []float64) []float64 {
	out := make([]float64, mesh.NumCells()*3)
	for c, corners := range mesh.Cells {
		if len(corners) == 0 {
			continue
		}
		var sum [3]float64
		for _, pi := range corners {
			sum[0] += pointVec[3*pi]
			sum[1] += pointVec[3*pi+1]
			sum[2] += pointVec[3*pi+2]
		}
		n := float64(len(corners))
		out[3*c] = sum[0] / n
		out[3*c+1] = sum[1] / n
		out[3*c+2] = sum[2] / n
	}
	return out
}

func cellAverageScalar(mesh *meshbuild.Mesh, pointArr []float64) []float64 {
	out := make([]float64, mesh.NumCells())
	for c, corners := range mesh.Cells {
		if len(corners) == 0 {
			continue
		}
		vals := make([]float64, len(corners))
		for i, pi := range corners {
			vals[i] = pointArr[pi]
		}
		out[c] = floats.Sum(vals) / float64(len(corners))
	}
	return out
}

// magnitudes computes the per-entity L2 norm of an interleaved 3-component
// array, using gonum's Norm over each entity's 3-vector.
func magnitudes(vec3 []float64) []float64 {
	n := len(vec3) / 3
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := vec3[3*i : 3*i+3]
		norm := floats.Norm(v, 2)
		if math.IsNaN(norm) {
			norm = 0
		}
		out[i] = norm
	}
	return out
}
