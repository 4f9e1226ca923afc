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

func newEditCmd() *cobra.Command {
	var title string
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
		Use:   "edit <task>",
		Short: "Edit a task template",
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

				// Unset flags keep the stored value.
				in := engine.TaskInput{
					Title:         t.Title,
					Description:   t.Description,
					Category:      t.Category,
					Recurrence:    engine.ParseRecurrence(t.Recurrence),
					TargetMinutes: t.TargetMinutes,
					XPReward:      t.XPReward,
					PointReward:   t.PointReward,
					StatName:      t.StatName,
					EveryNDays:    t.EveryNDays,
				}
				for _, d := range t.Weekdays {
					in.Weekdays = append(in.Weekdays, time.Weekday(d))
				}
				f := cmd.Flags()
				if f.Changed("title") {
					in.Title = title
				}
				if f.Changed("desc") {
					in.Description = desc
				}
				if f.Changed("category") {
					in.Category = category
				}
				if f.Changed("recur") {
					in.Recurrence = engine.ParseRecurrence(recur)
				}
				if f.Changed("target") {
					if target > 0 {
						in.TargetMinutes = &target
					} else {
						in.TargetMinutes = nil
					}
				}
				if f.Changed("xp") {
					in.XPReward = xp
				}
				if f.Changed("points") {
					in.PointReward = points
				}
				if f.Changed("stat") {
					if stat != "" {
						in.StatName = &stat
					} else {
						in.StatName = nil
					}
				}
				if f.Changed("every") {
					if everyN > 0 {
						in.EveryNDays = &everyN
					} else {
						in.EveryNDays = nil
					}
				}
				if f.Changed("weekdays") {
					in.Weekdays = engine.ParseWeekdays(weekdays)
				}

				updated, err := svc.EditTask(t.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s güncellendi\n", ui.IconDone, updated.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&recur, "recur", "r", "", "Recurrence (once|daily|weekly|monthly|custom)")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Target minutes (0 clears)")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP reward")
	cmd.Flags().IntVar(&points, "points", 0, "Point reward")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Skill name (empty clears)")
	cmd.Flags().IntVarP(&everyN, "every", "n", 0, "Custom interval in days (0 clears)")
	cmd.Flags().StringVarP(&weekdays, "weekdays", "w", "", "Custom weekdays (mon,tue,…)")

	return cmd
}
