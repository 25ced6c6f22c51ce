// Package pipeline wires the neutral parser, mesh builder, result pool,
// field resolver, and VTK writers into the single top-level Convert
// operation the CLI calls.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/notargets/femapvtk/internal/config"
	"github.com/notargets/femapvtk/internal/diagnostics"
	"github.com/notargets/femapvtk/internal/fields"
	"github.com/notargets/femapvtk/internal/meshbuild"
	"github.com/notargets/femapvtk/internal/neutral"
	"github.com/notargets/femapvtk/internal/resultpool"
	"github.com/notargets/femapvtk/internal/vtkio"
)

// channelOrder is the canonical precedence for picking the step axis
// (§4.5: "the first channel whose sets are non-empty").
var channelOrder = []string{"displacement", "magnetic", "current", "force", "forceLorentz", "heat"}

// Convert runs one end-to-end pass: read the mesh, parse every configured
// result channel concurrently, then write one multi-block document per
// output step plus the top-level collection index. A mesh file that cannot
// be opened or scanned, an output directory that cannot be created, or a
// collection document that cannot be written is returned as an error;
// malformed records, unreadable result channels and failed steps are
// recorded in diag and the run continues.
func Convert(cfg config.Config, diag *diagnostics.Log) error {
	meshFile, err := os.Open(cfg.ResolvedMeshFile())
	if err != nil {
		return fmt.Errorf("reading mesh file: %w", err)
	}
	blocks, err := neutral.Scan(meshFile)
	meshFile.Close()
	if err != nil {
		return fmt.Errorf("scanning mesh file: %w", err)
	}

	header := neutral.ExtractHeader(blocks)
	log.Printf("converting %q (version %s)", header.Title, header.Version)

	nodes := neutral.ExtractNodes(blocks, diag)
	properties := neutral.ExtractProperties(blocks, diag)
	elements := neutral.ExtractElements(blocks, diag)
	_ = neutral.ExtractMaterials(blocks, diag) // consumed only for diagnostics coverage; material payload beyond ID is out of scope

	mesh := meshbuild.Build(nodes, elements, properties, cfg.Force2D, diag)
	groups := vtkio.GroupCellsByProperty(mesh)
	attached := vtkio.AttachedCellArrays{
		ElementID: mesh.ElementID, PropertyID: mesh.PropertyID,
		MaterialID: mesh.MaterialID, TopologyID: mesh.TopologyID,
	}

	channels := cfg.Channels()
	results := resultpool.Parse(channels, diag)
	sets := resultpool.CanonicalSets(results, channelOrder)
	if len(sets) == 0 {
		// No channel contributed a step axis (a purely static mesh with no
		// configured result files): emit the geometry as a single step 0.
		sets = []neutral.OutputSet{{ID: 0, Value: 0.0}}
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })

	stepDir := filepath.Join(cfg.OutDir, cfg.OutName)
	if err := os.MkdirAll(stepDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	pvdEntries := make([]*vtkio.PVDEntry, len(sets))
	var wg sync.WaitGroup
	wg.Add(len(sets))
	for i, set := range sets {
		go func(i int, set neutral.OutputSet) {
			defer wg.Done()
			entry, err := writeStep(cfg, mesh, groups, attached, results, set, stepDir, diag)
			if err != nil {
				if diag != nil {
					diag.Record(diagnostics.KindWriteFailed, strconv.Itoa(set.ID), err.Error())
				}
				log.Printf("Warning: step %d failed to write: %v", set.ID, err)
				return
			}
			pvdEntries[i] = entry
		}(i, set)
	}
	wg.Wait()

	var finalEntries []vtkio.PVDEntry
	for _, e := range pvdEntries {
		if e != nil {
			finalEntries = append(finalEntries, *e)
		}
	}

	pvdPath := filepath.Join(cfg.OutDir, cfg.OutName+".pvd")
	if err := vtkio.WritePVD(pvdPath, finalEntries); err != nil {
		return fmt.Errorf("writing collection document: %w", err)
	}

	if diag != nil {
		diagPath := filepath.Join(cfg.OutDir, cfg.OutName+".diagnostics.yaml")
		if err := diag.Flush(diagPath); err != nil {
			log.Printf("Warning: failed to write diagnostics report: %v", err)
		}
	}

	return nil
}

func writeStep(cfg config.Config, mesh *meshbuild.Mesh, groups map[int][]int, attached vtkio.AttachedCellArrays,
	results map[string]resultpool.ChannelResult, set neutral.OutputSet, stepDir string, diag *diagnostics.Log) (*vtkio.PVDEntry, error) {

	points := mesh.ClonePoints()

	if disp, ok := results["displacement"]; ok {
		applyDisplacement(points, mesh, resultpool.VectorsForStep(disp.Vectors, set.ID))
	}

	pointData := map[string][]float64{}
	cellData := map[string][]float64{}
	for _, channelName := range []string{"magnetic", "current", "force", "forceLorentz", "heat"} {
		r, ok := results[channelName]
		if !ok {
			continue
		}
		vecs := resultpool.VectorsForStep(r.Vectors, set.ID)
		if len(vecs) == 0 {
			continue
		}
		policy, ok := fields.Policies[channelName]
		if !ok {
			continue
		}
		resolved := fields.ResolveChannel(policy, vecs, mesh, diag)
		for k, v := range resolved.PointData {
			pointData[k] = v
		}
		for k, v := range resolved.CellData {
			cellData[k] = v
		}
	}

	title := neutral.SanitizeTitle(set.Title)
	if title == "" {
		title = strconv.Itoa(set.ID)
	}

	childDir := filepath.Join(stepDir, title)
	if err := os.MkdirAll(childDir, 0o755); err != nil {
		return nil, err
	}

	workingMesh := &meshbuild.Mesh{
		Points:       points,
		NodeIndex:    mesh.NodeIndex,
		Cells:        mesh.Cells,
		ElementIndex: mesh.ElementIndex,
		ElementID:    mesh.ElementID,
		PropertyID:   mesh.PropertyID,
		MaterialID:   mesh.MaterialID,
		TopologyID:   mesh.TopologyID,
		VTKKind:      mesh.VTKKind,
		UniqueProps:  mesh.UniqueProps,
	}

	var vtmEntries []vtkio.VTMEntry
	for idx, propID := range mesh.UniqueProps {
		cellIndices := groups[propID]
		vtuName := fmt.Sprintf("%s_%d.vtu", title, idx)
		vtuPath := filepath.Join(childDir, vtuName)
		if err := vtkio.WriteVTU(vtuPath, workingMesh, cellIndices, attached, pointData, cellData, cfg.ASCII); err != nil {
			return nil, err
		}
		vtmEntries = append(vtmEntries, vtkio.VTMEntry{
			Index: idx,
			Name:  strconv.Itoa(propID),
			File:  filepath.Join(title, vtuName),
		})
	}

	vtmPath := filepath.Join(stepDir, title+".vtm")
	if err := vtkio.WriteVTM(vtmPath, vtmEntries); err != nil {
		return nil, err
	}

	return &vtkio.PVDEntry{
		Timestep: set.Value,
		File:     filepath.Join(cfg.OutName, title+".vtm"),
	}, nil
}

// applyDisplacement offsets each displaced node's point coordinates in
// place, taking the first three vector records of the channel's step
// slice as the (dx, dy, dz) components, per §4.7 step 2.
func applyDisplacement(points []float64, mesh *meshbuild.Mesh, vectors []neutral.OutputVector) {
	if len(vectors) < 3 {
		return
	}
	vx, vy, vz := vectors[0], vectors[1], vectors[2]
	if vx.EntType != neutral.EntityNodal {
		return
	}
	for nodeID, dx := range vx.Results {
		idx, ok := mesh.NodeIndex[nodeID]
		if !ok {
			continue
		}
		points[3*idx] += dx
		points[3*idx+1] += vy.Results[nodeID]
		points[3*idx+2] += vz.Results[nodeID]
	}
}
