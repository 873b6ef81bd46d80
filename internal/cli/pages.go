package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func pagesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "pages",
		Short: "Manage page files in a project",
	}

	c.AddCommand(pagesListCmd())
	return c
}

func pagesListCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(project)
			if err != nil {
				return err
			}

			refs, err := app.pages.ListPages(app.root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no pages found)")
				return nil
			}

			fmt.Fprintf(w, "Project: %s\n\n", app.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(app.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	return cmd
}
