package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit the profile directly",
	}

	name := &cobra.Command{
		Use:   "name <username>",
		Short: "Rename the player",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("username is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				svc.SetUsername(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s merhaba, %s\n", ui.IconSparkle, svc.State().Profile.Username)
				return nil
			})
		},
	}

	xp := &cobra.Command{
		Use:   "xp <total>",
		Short: "Overwrite the xp total (level is recomputed)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("xp total is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("xp must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				v, _ := strconv.Atoi(args[0])
				svc.SetXP(v)
				p := svc.State().Profile
				fmt.Fprintf(cmd.OutOrStdout(), "%s XP %d, seviye %d (%s)\n", ui.IconBolt, p.XP, p.Level, p.LevelName)
				return nil
			})
		},
	}

	var freezes int
	streak := &cobra.Command{
		Use:   "streak <days>",
		Short: "Overwrite streak counters",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("day count is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("days must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				days, _ := strconv.Atoi(args[0])
				f := svc.State().Profile.StreakFreezes
				if cmd.Flags().Changed("freezes") {
					f = freezes
				}
				svc.SetStreak(days, f)
				p := svc.State().Profile
				fmt.Fprintln(cmd.OutOrStdout(), ui.StreakText(p.StreakDays, p.StreakFreezes))
				return nil
			})
		},
	}
	streak.Flags().IntVar(&freezes, "freezes", 0, "Streak freezes remaining")

	stat := &cobra.Command{
		Use:   "stat <name> <seconds>",
		Short: "Overwrite a skill's practiced seconds",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("stat name and seconds are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("seconds must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				secs, _ := strconv.Atoi(args[1])
				if !svc.SetStatSeconds(args[0], secs) {
					return fmt.Errorf("no skill named %q", args[0])
				}
				s := svc.State().Stats[args[0]]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: seviye %d (%.1f saat)\n",
					ui.IconBolt, s.Name, engine.StatLevel(s), float64(s.TotalSeconds)/3600)
				return nil
			})
		},
	}

	cmd.AddCommand(name, xp, streak, stat)
	return cmd
}
