package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/solidify/project"
	"github.com/bloodmagesoftware/solidify/scene"
	"github.com/bloodmagesoftware/solidify/view"
)

var viewSceneFlag string

var viewCmd = &cobra.Command{
	Use:   "view [scene-name]",
	Short: "Open an interactive wireframe viewer for a scene",
	Long:  `Evaluates a scene and opens a window showing its polygon mesh as a wireframe. Left-drag orbits, right-drag pans, scroll zooms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, err := getProjectRoot()
		if err != nil {
			return err
		}

		cfg, err := project.LoadConfig(projectRoot)
		if err != nil {
			return err
		}

		scenePath := viewSceneFlag
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

		return view.Run(cfg.Name, s)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewSceneFlag, "scene", "", "path to the scene YAML file")
	rootCmd.AddCommand(viewCmd)
}
