package vtkio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteVTM(t *testing.T) {
	entries := []VTMEntry{
		{Index: 0, Name: "7", File: "step1/step1_0.vtu"},
	}
	path := filepath.Join(t.TempDir(), "step1.vtm")
	require.NoError(t, WriteVTM(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.Contains(content, `name="7"`))
	require.True(t, strings.Contains(content, `file="step1/step1_0.vtu"`))
}
