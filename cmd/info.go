package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/solidify/meshio"
	"github.com/bloodmagesoftware/solidify/project"
	"github.com/bloodmagesoftware/solidify/scene"
)

var infoSceneFlag string

var infoCmd = &cobra.Command{
	Use:   "info [scene-name]",
	Short: "Print vertex and polygon counts for a scene",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := getProjectRoot()
		if err != nil {
			return err
		}

		cfg, err := project.LoadConfig(projectRoot)
		if err != nil {
			return err
		}

		scenePath := infoSceneFlag
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

		verts, cells, indexCount := meshio.ToVerticesAndPolygons(s)
		fmt.Printf("polygons: %d\n", len(cells))
		fmt.Printf("vertices: %d\n", len(verts))
		fmt.Printf("vertex references: %d\n", indexCount)

		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoSceneFlag, "scene", "", "path to the scene YAML file")
	rootCmd.AddCommand(infoCmd)
}
