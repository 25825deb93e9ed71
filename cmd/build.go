package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/solidify/meshio"
	"github.com/bloodmagesoftware/solidify/project"
	"github.com/bloodmagesoftware/solidify/scene"
)

var (
	buildSceneFlag  string
	buildOutputFlag string
)

var buildCmd = &cobra.Command{
	Use:   "build [scene-name]",
	Short: "Evaluate a scene into a mesh",
	Long:  `Loads a scene YAML document, evaluates its Boolean operation tree, and writes the result as VTK, OBJ, or a gob cache, chosen by the output file's extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := getProjectRoot()
		if err != nil {
			return err
		}

		cfg, err := project.LoadConfig(projectRoot)
		if err != nil {
			return err
		}

		scenePath := buildSceneFlag
		if scenePath == "" {
			if len(args) == 1 {
				scenePath = filepath.Join(projectRoot, "scenes", args[0]+".yaml")
			} else if cfg.DefaultScene != "" {
				scenePath = filepath.Join(projectRoot, cfg.DefaultScene)
			} else {
				return cmd.Help()
			}
		}

		sc, err := scene.Load(scenePath)
		if err != nil {
			return fmt.Errorf("loading scene %s: %w", scenePath, err)
		}

		s, err := sc.Build()
		if err != nil {
			return fmt.Errorf("building scene %s: %w", scenePath, err)
		}

		outPath := buildOutputFlag
		if outPath == "" {
			outPath = filepath.Join(projectRoot, cfg.DefaultOutput)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()

		switch strings.ToLower(filepath.Ext(outPath)) {
		case ".vtk":
			err = meshio.WriteVTK(f, s, cfg.Name)
		case ".obj":
			err = meshio.WriteOBJ(f, s)
		case ".gob":
			err = meshio.Encode(f, s)
		default:
			return fmt.Errorf("unrecognized output extension %q (want .vtk, .obj, or .gob)", filepath.Ext(outPath))
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		fmt.Printf("wrote %s\n", outPath)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildSceneFlag, "scene", "", "path to the scene YAML file (overrides the positional scene name and default_scene)")
	buildCmd.Flags().StringVar(&buildOutputFlag, "output", "", "output mesh path (overrides default_output); extension selects the format")
	rootCmd.AddCommand(buildCmd)
}
