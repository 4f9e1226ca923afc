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

func newAddCmd() *cobra.Command {
	var desc string
	var category string
	var recur string
	var target int
	var xp int
	var points int
	var stat string
	var everyN int
	var weekdays string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a recurring or one-off task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				in := engine.TaskInput{
					Title:       args[0],
					Description: desc,
					Category:    category,
					Recurrence:  engine.ParseRecurrence(recur),
					XPReward:    xp,
					PointReward: points,
				}
				if target > 0 {
					in.TargetMinutes = &target
				}
				if stat != "" {
					in.StatName = &stat
				}
				if everyN > 0 {
					in.EveryNDays = &everyN
				}
				if weekdays != "" {
					in.Weekdays = engine.ParseWeekdays(weekdays)
				}

				t, err := svc.CreateTask(in, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.IconPlus, t.Title, ui.Muted.Render("("+shortID(t.ID, 8)+", "+t.Recurrence+")"))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&recur, "recur", "r", "daily", "Recurrence (once|daily|weekly|monthly|custom)")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Target minutes to count as completed")
	cmd.Flags().IntVar(&xp, "xp", 50, "XP reward per finished session")
	cmd.Flags().IntVar(&points, "points", 10, "Point reward per finished session")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Skill credited with practiced time")
	cmd.Flags().IntVarP(&everyN, "every", "n", 0, "Custom recurrence: due every N days")
	cmd.Flags().StringVarP(&weekdays, "weekdays", "w", "", "Custom recurrence: comma-separated weekdays (mon,tue,…)")

	return cmd
}
