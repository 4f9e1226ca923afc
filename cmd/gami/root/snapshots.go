package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/storage"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

// snapshots works on the sqlite history backend only; the plain file
// backend keeps a single snapshot and has nothing to list.
func newSnapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Inspect the snapshot history (sqlite backend)",
	}

	openHistory := func(ctx context.Context) (*storage.HistoryStore, error) {
		cfg, err := loadFileConfig()
		if err != nil {
			return nil, err
		}
		store, _, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		h, ok := store.(*storage.HistoryStore)
		if !ok {
			_ = store.Close()
			return nil, errors.New(`snapshot history needs backend = "sqlite" in the config`)
		}
		return h, nil
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			infos, err := h.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(kayıt yok)"))
				return nil
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  %s\n", info.ID,
					info.SavedAt.Local().Format("2006-01-02 15:04:05"),
					ui.Muted.Render(fmt.Sprintf("%d bayt", info.Bytes)))
			}
			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "l", 20, "Rows to show (0 = all)")

	prune := &cobra.Command{
		Use:   "prune <keep>",
		Short: "Delete all but the newest N snapshots",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("keep count is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("keep count must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			keep, _ := strconv.Atoi(args[0])
			removed, err := h.Prune(ctx, keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d kayıt silindi\n", ui.IconDone, removed)
			return nil
		},
	}

	restore := &cobra.Command{
		Use:   "restore <id>",
		Short: "Roll the state back to a stored snapshot",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("snapshot id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("snapshot id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			st, err := h.LoadVersion(ctx, id)
			if err != nil {
				return err
			}
			if st == nil {
				return fmt.Errorf("no snapshot #%d", id)
			}
			// Restoring appends: the rollback itself stays undoable.
			if err := h.Save(ctx, st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d geri yüklendi\n", ui.IconDone, id)
			return nil
		},
	}

	cmd.AddCommand(list, prune, restore)
	return cmd
}
