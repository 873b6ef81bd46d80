package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danielgomezobraztsov/web-presentation/internal/infra/fsproject"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/logger"
	"github.com/danielgomezobraztsov/web-presentation/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var pagesDir string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create webpres.yaml and a sample page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid project path: %w", err)
			}

			if err := usecase.NewInitProject(fsproject.NewInitializer()).Execute(root, pagesDir, force); err != nil {
				return err
			}
			logger.L().Info("project.initialized", "root", root, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized webpres project at %s\n", root)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to the working directory)")
	cmd.Flags().StringVar(&pagesDir, "pages-dir", "", "Where to write the sample page (relative to the project)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}
