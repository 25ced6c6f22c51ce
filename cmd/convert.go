/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/femapvtk/internal/config"
	"github.com/notargets/femapvtk/internal/diagnostics"
	"github.com/notargets/femapvtk/internal/pipeline"
	"github.com/notargets/femapvtk/internal/profiling"
)

var convertFile string

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a FEMAP Neutral mesh plus result channels into a VTK time-series bundle",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig(cmd)

		var stopCPU func()
		if viper.GetBool("profile") {
			stopCPU = profiling.StartCPUProfile(cfg.OutDir)
			defer stopCPU()
		}

		diag := &diagnostics.Log{Mirror: true}
		if err := pipeline.Convert(cfg, diag); err != nil {
			log.Fatalf("Failed to convert: %v", err)
		}
	},
}

func buildConfig(cmd *cobra.Command) config.Config {
	if convertFile != "" {
		data, err := os.ReadFile(convertFile)
		if err != nil {
			log.Fatalf("Failed to read config file: %v", err)
		}
		var cfg config.Config
		if err := cfg.Parse(data); err != nil {
			log.Fatalf("Failed to parse config file: %v", err)
		}
		return cfg
	}

	return config.Config{
		InDir:        viper.GetString("in-dir"),
		MeshFile:     viper.GetString("mesh"),
		Displacement: viper.GetString("displacement"),
		Magnetic:     viper.GetString("magnetic"),
		Current:      viper.GetString("current"),
		Force:        viper.GetString("force"),
		ForceLorentz: viper.GetString("force-lorentz"),
		Heat:         viper.GetString("heat"),
		OutDir:       viper.GetString("out-dir"),
		OutName:      viper.GetString("out-name"),
		Force2D:      viper.GetBool("force-2d"),
		ASCII:        viper.GetBool("ascii"),
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.String("in-dir", "", "directory that relative mesh/channel paths are resolved against")
	flags.String("mesh", "", "FEMAP Neutral mesh file (required)")
	flags.String("displacement", "", "displacement result channel file")
	flags.String("magnetic", "", "magnetic result channel file")
	flags.String("current", "", "current result channel file")
	flags.String("force", "", "force result channel file")
	flags.String("force-lorentz", "", "Lorentz force result channel file")
	flags.String("heat", "", "heat result channel file")
	flags.String("out-dir", ".", "output directory")
	flags.String("out-name", "out", "output collection name")
	flags.Bool("force-2d", false, "reduce 3D topologies to their 2D equivalents")
	flags.Bool("ascii", true, "write VTK DataArrays in ascii mode instead of inline binary")
	flags.Bool("profile", false, "capture a CPU profile of the conversion")
	flags.StringVar(&convertFile, "config", "", "YAML file providing the full convert configuration")

	for _, name := range []string{
		"in-dir", "mesh", "displacement", "magnetic", "current", "force", "force-lorentz",
		"heat", "out-dir", "out-name", "force-2d", "ascii", "profile",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	convertCmd.MarkFlagRequired("mesh")
}
