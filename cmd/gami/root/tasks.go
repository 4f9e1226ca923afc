package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newTasksCmd() *cobra.Command {
	var all bool
	var date string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks due today (or all templates)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				out := cmd.OutOrStdout()
				now := time.Now()
				day := now
				if date != "" {
					parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
					if err != nil {
						return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
					}
					day = parsed
				}

				if all {
					fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tüm görevler"))
					for _, t := range svc.State().TasksInOrder() {
						due := ""
						if engine.IsDue(t, day) {
							due = ui.Good.Render(" bugün")
						}
						fmt.Fprintf(out, "- %s %s %s%s\n", ui.Muted.Render(shortID(t.ID, 8)), t.Title, ui.Muted.Render("("+t.Recurrence+")"), due)
					}
					return nil
				}

				due := svc.TasksDueOn(day)
				fmt.Fprintln(out, ui.Heading(ui.IconTask, "Bugünün görevleri ("+day.Format("2006-01-02")+")"))
				if len(due) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(görev yok)"))
					return nil
				}
				completed := map[string]bool{}
				for _, c := range svc.CompletionsOn(day) {
					completed[c.TaskID] = true
				}
				for _, t := range due {
					mins := svc.MinutesLoggedOn(t.ID, day, now)
					mark := "▫️"
					switch {
					case completed[t.ID]:
						mark = ui.IconDone
					case svc.ActiveSession(t.ID) != nil:
						mark = ui.IconTimer
					}
					target := ""
					if t.TargetMinutes != nil {
						target = fmt.Sprintf(" / %d dk", *t.TargetMinutes)
					}
					fmt.Fprintf(out, "%s %s %s %s\n", mark, ui.Muted.Render(shortID(t.ID, 8)), t.Title,
						ui.Muted.Render(fmt.Sprintf("(%d dk%s, +%d XP)", mins, target, t.XPReward)))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every template instead of today's agenda")
	cmd.Flags().StringVar(&date, "date", "", "Agenda date (YYYY-MM-DD, default today)")

	return cmd
}
