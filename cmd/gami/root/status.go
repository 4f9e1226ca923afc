package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, skills, badges and today's routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				out := cmd.OutOrStdout()
				st := svc.State()
				p := st.Profile
				now := time.Now()

				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Profil"))
				fmt.Fprintln(out, ui.LabelValue("Oyuncu", p.Username))
				fmt.Fprintln(out, ui.LabelValue("Seviye", fmt.Sprintf("%d (%s)", p.Level, p.LevelName)))
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (sonraki seviyeye %d)", p.XP, engine.XPToNextLevel(p.XP))))
				fmt.Fprintln(out, ui.LabelValue("Puan", p.Points))
				fmt.Fprintln(out, ui.LabelValue("Seri", ui.StreakText(p.StreakDays, p.StreakFreezes)))
				fmt.Fprintln(out, ui.LabelValue("Cüzdan", fmt.Sprintf("%.2f", st.Wallet.Balance)))
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render("📊 Beceriler"))
				for _, name := range state.DefaultStatNames {
					s, ok := st.Stats[name]
					if !ok {
						continue
					}
					hours := float64(s.TotalSeconds) / 3600
					fmt.Fprintf(out, "- %s: seviye %d (%.1f saat)\n", name, engine.StatLevel(s), hours)
				}
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Rozetler"))
				earnedAny := false
				for _, b := range svc.Badges() {
					if !b.Earned {
						continue
					}
					earnedAny = true
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, b.Name, ui.Muted.Render(b.Description))
				}
				if !earnedAny {
					fmt.Fprintln(out, ui.Muted.Render("(henüz rozet yok)"))
				}
				fmt.Fprintln(out, "")

				fmt.Fprintln(out, ui.H2.Render("🗓️ Bugün"))
				log := st.EnsureDailyLog(state.DateKey(now))
				fmt.Fprintf(out, "- %s zikir: %d / %d\n", ui.IconBeads, log.ZikrCount, st.Settings.ZikrDailyTarget)
				fmt.Fprintf(out, "- %s amca: %d / %d\n", ui.IconLoop, log.AmcaCount, st.Settings.MinAmcaPerDay)
				fmt.Fprintf(out, "- %s gelir: %.2f\n", ui.IconWallet, log.IncomeAmount)
				if log.WakePenalty > 0 {
					fmt.Fprintf(out, "- %s uyanma cezası: %s\n", ui.IconSun, ui.Bad.Render(fmt.Sprintf("-%.0f", log.WakePenalty)))
				}
				if book := st.ActiveBook(); book != nil {
					fmt.Fprintf(out, "- %s %s: %d / %d sayfa\n", ui.IconBook, book.Title, book.PagesWritten, book.TotalPages)
				}
				for _, g := range st.GoalsInOrder() {
					fmt.Fprintf(out, "- %s %s: %%%.0f\n", ui.IconGoal, g.Name, engine.GoalProgress(g)*100)
				}
				return nil
			})
		},
	}
	return cmd
}
