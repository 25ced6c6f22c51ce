package neutral

import (
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
)

// ExtractMaterials walks Block 601 one line per record: field 0 is the
// material ID; the remainder of the payload is opaque and ignored.
func ExtractMaterials(blocks map[int][]Block, diag *diagnostics.Log) []Material {
	lines := Lines(blocks, 601)
	var out []Material
	for i := 0; i < len(lines); i++ {
		fields := SplitRecord(lines[i])
		if len(fields) < 1 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 601: unparsable material record")
			}
			continue
		}
		out = append(out, Material{ID: id})
	}
	return out
}
