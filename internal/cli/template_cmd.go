package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse path templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available path templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}

			if len(templates) == 0 {
				fmt.Println("No path templates found.")
				return nil
			}

			fmt.Print(formatter.FormatTemplateList(templates))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the full template tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Templates.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTemplateTree(t))
			return nil
		},
	}
}
