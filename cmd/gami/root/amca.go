package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newAmcaCmd() *cobra.Command {
	var xp int

	cmd := &cobra.Command{
		Use:   "amca [note]",
		Short: "Log a quick win (small disciplined act)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				var note *string
				if len(args) > 0 {
					n := strings.Join(args, " ")
					note = &n
				}
				action := svc.RecordAmcaAction(xp, note, time.Now())
				st := svc.State()
				log := st.EnsureDailyLog(state.DateKey(action.Timestamp))
				fmt.Fprintf(cmd.OutOrStdout(), "%s +%d XP %s\n", ui.IconLoop, action.XPReward,
					ui.Muted.Render(fmt.Sprintf("(bugün %d / %d)", log.AmcaCount, st.Settings.MinAmcaPerDay)))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&xp, "xp", 5, "XP granted for the quick win")

	return cmd
}
