package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task template (history is kept)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id or title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				t, err := resolveTask(svc, args[0])
				if err != nil {
					return err
				}
				svc.DeleteTask(t.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s silindi %s\n", ui.IconDone, t.Title,
					ui.Muted.Render("(oturum ve tamamlanma geçmişi duruyor)"))
				return nil
			})
		},
	}
	return cmd
}
