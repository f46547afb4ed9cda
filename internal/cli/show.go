package cli

import (
	"github.com/spf13/cobra"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/render"
	"portfolio.dev/internal/server"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/view"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a project detail view in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func show(cmd *cobra.Command, opts *RootOptions, id string) error {
	storeCfg := opts.Config.Store
	storeCfg.Watch = false
	store, err := server.OpenStore(cmd.Context(), storeCfg, opts.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	projects := services.NewProjectService(store, storeCfg.Key, opts.Logger, nil)
	terminal := render.NewTerminal(cmd.OutOrStdout(), icons.TechTable())

	controller := view.NewController(projects, nil)
	controller.Subscribe(terminal.Observe)
	return controller.Navigate(cmd.Context(), id)
}
