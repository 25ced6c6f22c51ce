package neutral

// ExtractHeader reads Block 100: line 0 is the title (normalize <NULL>),
// line 1 is the version string. Missing lines yield a zero-value Header.
func ExtractHeader(blocks map[int][]Block) Header {
	lines := Lines(blocks, 100)
	var h Header
	if len(lines) > 0 {
		h.Title = NormalizeNull(lines[0])
	}
	if len(lines) > 1 {
		h.Version = lines[1]
	}
	return h
}
