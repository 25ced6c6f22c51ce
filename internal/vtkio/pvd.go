package vtkio

import (
	"fmt"
	"os"
	"strings"
)

// PVDEntry is one step listed in the top-level collection document.
type PVDEntry struct {
	Timestep float64
	File     string // path relative to the .pvd file
}

// WritePVD emits the collection index: a hand-assembled XML document (like
// the reference converter's string-joined XML) rather than a generic
// encoding/xml struct marshal, so the timestep float formatting and
// attribute order stay under direct control for byte-stable output.
func WritePVD(path string, entries []PVDEntry) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<VTKFile type="Collection" version="0.1" byte_order="LittleEndian">` + "\n")
	b.WriteString("<Collection>\n")
	for _, e := range entries {
		fmt.Fprintf(&b, `<DataSet timestep="%.17g" part="0" file=%q/>`+"\n", e.Timestep, e.File)
	}
	b.WriteString("</Collection>\n")
	b.WriteString("</VTKFile>\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
