package neutral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractHeader(t *testing.T) {
	blocks := map[int][]Block{
		100: {{ID: 100, Lines: []string{"<NULL>", "4.41"}}},
	}
	h := ExtractHeader(blocks)
	require.Equal(t, "", h.Title)
	require.Equal(t, "4.41", h.Version)
}

func TestExtractHeader_Missing(t *testing.T) {
	h := ExtractHeader(map[int][]Block{})
	require.Equal(t, Header{}, h)
}
