package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Daily routine ledger (book, zikr, income, wake, goals)",
	}

	cmd.AddCommand(
		newBookCmd(),
		newZikrCmd(),
		newIncomeCmd(),
		newWakeCmd(),
		newGoalCmd(),
	)

	return cmd
}

func newBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book writing projects",
	}

	var totalPages int
	var dailyTarget int
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Start a book project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				b, err := svc.CreateBookProject(args[0], totalPages, dailyTarget)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d sayfa, günde %d)\n", ui.IconBook, b.Title, b.TotalPages, b.DailyTargetPages)
				return nil
			})
		},
	}
	add.Flags().IntVarP(&totalPages, "pages", "p", 100, "Total pages planned")
	add.Flags().IntVarP(&dailyTarget, "daily", "d", 2, "Daily page target")

	log := &cobra.Command{
		Use:   "log <pages>",
		Short: "Log pages written today on the active book",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("page count is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("page count must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				pages, _ := strconv.Atoi(args[0])
				book := svc.State().ActiveBook()
				if book == nil {
					return errors.New("no active book project")
				}
				updated := svc.LogBookProgress(book.ID, pages, time.Now())
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s: %d / %d sayfa\n", ui.IconBook, updated.Title, updated.PagesWritten, updated.TotalPages)
				if updated.IsCompleted {
					fmt.Fprintln(out, ui.Gold.Render(ui.IconBadge+" Kitap tamamlandı!"))
				}
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List book projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				books := svc.State().BooksInOrder()
				if len(books) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(kitap projesi yok)"))
					return nil
				}
				for _, b := range books {
					mark := ui.IconBook
					if b.IsCompleted {
						mark = ui.IconDone
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d / %d sayfa\n", mark, b.Title, b.PagesWritten, b.TotalPages)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(add, log, list)
	return cmd
}

func newZikrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zikr <count>",
		Short: "Record today's zikr count (absolute, not additive)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("count is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("count must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				count, _ := strconv.Atoi(args[0])
				now := time.Now()
				svc.SetDailyZikrCount(now, count)
				st := svc.State()
				log := st.EnsureDailyLog(state.DateKey(now))
				mark := ui.IconBeads
				if log.ZikrCount >= st.Settings.ZikrDailyTarget {
					mark = ui.IconDone
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s zikir: %d / %d\n", mark, log.ZikrCount, st.Settings.ZikrDailyTarget)
				return nil
			})
		},
	}
	return cmd
}

func newIncomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income <total>",
		Short: "Record today's income total (the wallet books the delta)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("total is required")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return errors.New("total must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				total, _ := strconv.ParseFloat(args[0], 64)
				now := time.Now()
				svc.SetDailyIncome(now, total, now)
				st := svc.State()
				log := st.EnsureDailyLog(state.DateKey(now))
				fmt.Fprintf(cmd.OutOrStdout(), "%s bugün: %.2f, cüzdan: %.2f\n", ui.IconWallet, log.IncomeAmount, st.Wallet.Balance)
				return nil
			})
		},
	}
	return cmd
}

func newWakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wake <target> <actual>",
		Short: "Record wake-up times as HH:MM (late minutes go on the day's log as a penalty)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("target and actual times are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				now := time.Now()
				if !svc.ApplyWakeTimes(now, args[0], args[1]) {
					return fmt.Errorf("invalid time, want HH:MM (got %q / %q)", args[0], args[1])
				}
				log := svc.State().EnsureDailyLog(state.DateKey(now))
				out := cmd.OutOrStdout()
				if log.WakePenalty > 0 {
					fmt.Fprintf(out, "%s geç kalktın, ceza: %s\n", ui.IconSun, ui.Bad.Render(fmt.Sprintf("-%.0f", log.WakePenalty)))
					return nil
				}
				fmt.Fprintf(out, "%s zamanında kalktın\n", ui.IconSun)
				return nil
			})
		},
	}
	return cmd
}

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Material goals you are saving for",
	}

	var target float64
	var image string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a material goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				g, err := svc.AddMaterialGoal(args[0], image, target)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (hedef %.2f)\n", ui.IconGoal, g.Name, g.TargetAmount)
				return nil
			})
		},
	}
	add.Flags().Float64VarP(&target, "target", "t", 0, "Target amount")
	add.Flags().StringVar(&image, "image", "", "Vision image path")

	put := &cobra.Command{
		Use:   "put <name> <amount>",
		Short: "Put money toward a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("name and amount are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("amount must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				amount, _ := strconv.ParseFloat(args[1], 64)
				var goal *state.MaterialGoal
				for _, g := range svc.State().GoalsInOrder() {
					if g.Name == args[0] || g.ID == args[0] {
						goal = g
						break
					}
				}
				if goal == nil {
					return fmt.Errorf("no goal named %q", args[0])
				}
				updated := svc.ContributeToGoal(goal.ID, amount)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %.2f / %.2f (%%%.0f)\n",
					ui.IconGoal, updated.Name, updated.CurrentAmount, updated.TargetAmount, engine.GoalProgress(updated)*100)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List material goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				goals := svc.State().GoalsInOrder()
				if len(goals) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(hedef yok)"))
					return nil
				}
				for _, g := range goals {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %.2f / %.2f (%%%.0f)\n",
						ui.IconGoal, g.Name, g.CurrentAmount, g.TargetAmount, engine.GoalProgress(g)*100)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(add, put, list)
	return cmd
}
