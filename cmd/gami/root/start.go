package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <task>",
		Short: "Start a timer session on a task",
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
				already := svc.ActiveSession(t.ID) != nil
				sess := svc.StartTimer(t.ID)
				if already {
					elapsed := time.Since(sess.StartTime).Round(time.Second)
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s zaten çalışıyor (%s)\n", ui.IconTimer, t.Title, elapsed)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s başladı\n", ui.IconTimer, t.Title)
				return nil
			})
		},
	}
	return cmd
}
