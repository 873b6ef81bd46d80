package cli

import (
	"github.com/spf13/cobra"

	"github.com/danielgomezobraztsov/web-presentation/internal/usecase"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the controller and renderer walkthroughs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp("")
			if err != nil {
				return err
			}
			return usecase.NewDemo(app.controller, app.renderer).Run(cmd.OutOrStdout())
		},
	}
}
