// Package config defines the pipeline's configuration surface: the input
// directory, mesh file, six optional channel files, and the output/format
// knobs, loadable from a YAML file via ghodss/yaml, matching the teacher's
// InputParameters.Parse([]byte) error pattern.
package config

import (
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// Config is the full set of knobs a single `femapvtk convert` run takes.
// Every field is also exposed as a Cobra flag on the convert subcommand and
// bindable via Viper to a FEMAPVTK_-prefixed environment variable.
type Config struct {
	// InDir is joined to MeshFile and every channel path that does not
	// already name an existing file, mirroring the reference converter's
	// `Path(mesh) if Path(mesh).is_file() else self.input_dir / mesh` rule.
	InDir    string `yaml:"inDir,omitempty"`
	MeshFile string `yaml:"meshFile"`

	Displacement string `yaml:"displacement,omitempty"`
	Magnetic     string `yaml:"magnetic,omitempty"`
	Current      string `yaml:"current,omitempty"`
	Force        string `yaml:"force,omitempty"`
	ForceLorentz string `yaml:"forceLorentz,omitempty"`
	Heat         string `yaml:"heat,omitempty"`

	OutDir  string `yaml:"outDir"`
	OutName string `yaml:"outName"`

	Force2D bool `yaml:"force2d"`
	ASCII   bool `yaml:"ascii"`
}

// Parse unmarshals YAML bytes into c, mirroring InputParameters.Parse.
func (c *Config) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// resolve joins path to InDir unless path is blank, already absolute, or
// already names a file that exists relative to the working directory.
func (c *Config) resolve(path string) string {
	if path == "" || c.InDir == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(c.InDir, path)
}

// ResolvedMeshFile returns MeshFile resolved against InDir.
func (c *Config) ResolvedMeshFile() string {
	return c.resolve(c.MeshFile)
}

// Channels returns the configured channel name -> file path pairs, each
// resolved against InDir, omitting any channel the user left blank (that
// channel is skipped, not an error).
func (c *Config) Channels() map[string]string {
	out := make(map[string]string, 6)
	add := func(name, path string) {
		if path != "" {
			out[name] = c.resolve(path)
		}
	}
	add("displacement", c.Displacement)
	add("magnetic", c.Magnetic)
	add("current", c.Current)
	add("force", c.Force)
	add("forceLorentz", c.ForceLorentz)
	add("heat", c.Heat)
	return out
}
