// Package resultpool runs the block-1051 extractor over every configured
// result channel concurrently: one goroutine per channel, each writing into
// its own pre-sized result slot so no mutex is needed, joined with a
// sync.WaitGroup. Generalizes the teacher's sequential single-file
// ReadMeshFile pattern to the fan-out §4.5 requires.
package resultpool

import (
	"os"
	"sort"
	"sync"

	"github.com/notargets/femapvtk/internal/diagnostics"
	"github.com/notargets/femapvtk/internal/neutral"
)

// ChannelResult is one channel's parsed output, or its error if the file
// could not be read. A failing channel never aborts the others.
type ChannelResult struct {
	Name    string
	Sets    []neutral.OutputSet
	Vectors []neutral.OutputVector
	Err     error
}

// Parse spawns one worker per entry in channels (name -> file path),
// returning each channel's parsed result keyed by name.
func Parse(channels map[string]string, diag *diagnostics.Log) map[string]ChannelResult {
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]ChannelResult, len(names))
	var wg sync.WaitGroup
	wg.Add(len(names))

	for i, name := range names {
		go func(i int, name, path string) {
			defer wg.Done()
			results[i] = parseOne(name, path, diag)
		}(i, name, channels[name])
	}
	wg.Wait()

	out := make(map[string]ChannelResult, len(results))
	for _, r := range results {
		out[r.Name] = r
	}
	return out
}

func parseOne(name, path string, diag *diagnostics.Log) ChannelResult {
	f, err := os.Open(path)
	if err != nil {
		if diag != nil {
			diag.Record(diagnostics.KindUnreadableSource, name, err.Error())
		}
		return ChannelResult{Name: name, Err: err}
	}
	defer f.Close()

	blocks, err := neutral.Scan(f)
	if err != nil {
		if diag != nil {
			diag.Record(diagnostics.KindUnreadableSource, name, err.Error())
		}
		return ChannelResult{Name: name, Err: err}
	}

	return ChannelResult{
		Name:    name,
		Sets:    neutral.ExtractOutputSets(blocks, diag),
		Vectors: neutral.ExtractOutputVectors(blocks, diag),
	}
}

// CanonicalSets returns the output-set list from the first channel (in
// channelOrder) whose set list is non-empty, per §4.5's merge rule.
func CanonicalSets(results map[string]ChannelResult, channelOrder []string) []neutral.OutputSet {
	for _, name := range channelOrder {
		if r, ok := results[name]; ok && len(r.Sets) > 0 {
			return r.Sets
		}
	}
	return nil
}

// VectorsForStep returns the subset of a channel's vectors matching setID,
// in their original source-file order.
func VectorsForStep(vectors []neutral.OutputVector, setID int) []neutral.OutputVector {
	var out []neutral.OutputVector
	for _, v := range vectors {
		if v.SetID == setID {
			out = append(out, v)
		}
	}
	return out
}
