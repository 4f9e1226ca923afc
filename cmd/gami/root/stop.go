package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop [task]",
		Short: "Stop a running timer (all of them without an argument)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				out := cmd.OutOrStdout()

				var sessions []*stopTarget
				if len(args) == 0 {
					for _, sess := range svc.AllActiveSessions() {
						sessions = append(sessions, &stopTarget{sessionID: sess.ID, taskID: sess.TaskID})
					}
				} else {
					t, err := resolveTask(svc, args[0])
					if err != nil {
						return err
					}
					sess := svc.ActiveSession(t.ID)
					if sess == nil {
						return fmt.Errorf("no running timer for %q", t.Title)
					}
					sessions = append(sessions, &stopTarget{sessionID: sess.ID, taskID: t.ID})
				}
				if len(sessions) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("çalışan sayaç yok"))
					return nil
				}

				before := svc.State().Profile.Level
				for _, target := range sessions {
					stopped := svc.StopTimer(target.sessionID)
					title := target.taskID
					xp := 0
					if t := svc.Task(target.taskID); t != nil {
						title = t.Title
						xp = t.XPReward
					}
					dur := time.Duration(stopped.DurationSeconds) * time.Second
					fmt.Fprintf(out, "%s %s durdu: %s, +%d XP\n", ui.IconDone, title, dur, xp)
				}

				p := svc.State().Profile
				if p.Level > before {
					fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("seviye %d (%s)", p.Level, p.LevelName)))
				}
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("toplam %d XP, seviye %d (%s)", p.XP, p.Level, p.LevelName)))
				return nil
			})
		},
	}
	return cmd
}

type stopTarget struct {
	sessionID string
	taskID    string
}
