package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the live TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				return tui.RunDashboard(svc, cmd.OutOrStdout())
			})
		},
	}
	return cmd
}
