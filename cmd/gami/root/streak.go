package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newStreakCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Run the end-of-day streak evaluation",
		Long:  "Evaluates whether the day counts for the streak (enough quick wins or a finished session). Run once per day, typically from a scheduler.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				day := time.Now()
				if date != "" {
					parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
					if err != nil {
						return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
					}
					day = parsed
				}

				before := svc.State().Profile
				prevDays, prevFreezes := before.StreakDays, before.StreakFreezes

				svc.UpdateStreak(day)

				p := svc.State().Profile
				out := cmd.OutOrStdout()
				switch {
				case p.StreakDays > prevDays:
					fmt.Fprintf(out, "%s Seri devam: %s (+%d XP)\n", ui.IconFire,
						ui.Good.Render(fmt.Sprintf("%d gün", p.StreakDays)), engine.StreakXPBonus)
				case p.StreakFreezes < prevFreezes:
					fmt.Fprintf(out, "%s Gün boş geçti, dondurucu kullanıldı (%d kaldı)\n", ui.IconSnow, p.StreakFreezes)
				default:
					fmt.Fprintf(out, "%s Seri sıfırlandı\n", ui.Bad.Render(ui.IconWarn))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to evaluate (YYYY-MM-DD, default today)")

	return cmd
}
