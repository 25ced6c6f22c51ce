package neutral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRecord(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"whitespace", "1 2 3", []string{"1", "2", "3"}},
		{"comma", "1,2,3", []string{"1", "2", "3"}},
		{"trailing comma", "1,2,3,", []string{"1", "2", "3"}},
		{"comma with spaces", "1, 2, 3", []string{"1", "2", "3"}},
		{"empty", "", nil},
		{"multi-space", "1    2", []string{"1", "2"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SplitRecord(c.in))
		})
	}
}

func TestSplitRecord_TokenizerEquivalence(t *testing.T) {
	// Replacing commas with single spaces and trimming trailing whitespace
	// must yield the same field list as the comma form.
	line := "10, 20, 30.5,"
	commaForm := SplitRecord(line)
	spaceForm := SplitRecord(strings.TrimRight(strings.ReplaceAll(line, ",", " "), " "))
	require.Equal(t, commaForm, spaceForm)
}

func TestNormalizeNull(t *testing.T) {
	assert.Equal(t, "", NormalizeNull("<NULL>"))
	assert.Equal(t, "Title", NormalizeNull("Title"))
	assert.Equal(t, "", NormalizeNull("  <NULL>  "))
}
