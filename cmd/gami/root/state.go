package root

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iliskimuhendisi/gamicipline/internal/config"
	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
	"github.com/iliskimuhendisi/gamicipline/internal/storage"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

func loadFileConfig() (config.FileConfig, error) {
	path := os.Getenv("GAMICIPLINE_CONFIG")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadConfig(path)
}

func openStore(ctx context.Context, cfg config.FileConfig) (storage.Store, config.ResolvedStorage, error) {
	st := config.ResolveStorage(cfg)
	switch st.Backend {
	case "file":
		return storage.NewFileStore(st.StatePath), st, nil
	case "sqlite":
		h, err := storage.OpenHistory(ctx, st.DBPath)
		if err != nil {
			return nil, st, err
		}
		return h, st, nil
	default:
		return nil, st, fmt.Errorf("unknown storage backend %q", st.Backend)
	}
}

// applyRoutineOverrides folds config-file thresholds over the stored
// settings. Values absent from the config leave the snapshot alone.
func applyRoutineOverrides(st *state.AppState, cfg config.FileConfig) {
	r := cfg.Routine
	if r.MonthlyIncomeTarget != nil && *r.MonthlyIncomeTarget > 0 {
		st.Settings.MonthlyIncomeTarget = *r.MonthlyIncomeTarget
	}
	if r.ZikrDailyTarget != nil && *r.ZikrDailyTarget > 0 {
		st.Settings.ZikrDailyTarget = *r.ZikrDailyTarget
	}
	if r.MinAmcaPerDay != nil && *r.MinAmcaPerDay > 0 {
		st.Settings.MinAmcaPerDay = *r.MinAmcaPerDay
	}
	if r.WakePenaltyPerMinute != nil && *r.WakePenaltyPerMinute >= 0 {
		st.Settings.WakePenaltyPerMinute = *r.WakePenaltyPerMinute
	}
}

// withService loads the aggregate, runs the command body against a
// service, and persists the result. Load errors on a corrupt snapshot
// are reported but not fatal; the run continues on defaults.
func withService(ctx context.Context, fn func(svc *engine.Service) error) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	store, resolved, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	st, err := store.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" state could not be read, starting fresh: "+err.Error()))
	}
	applyRoutineOverrides(st, cfg)
	svc := engine.NewService(st)

	if err := fn(svc); err != nil {
		return err
	}
	if err := store.Save(ctx, svc.State()); err != nil {
		return err
	}
	if h, ok := store.(*storage.HistoryStore); ok && resolved.KeepSnapshots > 0 {
		if _, err := h.Prune(ctx, resolved.KeepSnapshots); err != nil {
			return err
		}
	}
	return nil
}

// shortID abbreviates an id for display. Ids are uuids in practice,
// but hand-edited snapshots may carry shorter ones.
func shortID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// resolveTask finds a task by exact id, unique id prefix, or exact
// title (case-insensitive).
func resolveTask(svc *engine.Service, arg string) (*state.TaskTemplate, error) {
	if t := svc.Task(arg); t != nil {
		return t, nil
	}
	var matches []*state.TaskTemplate
	for _, t := range svc.State().TasksInOrder() {
		if strings.HasPrefix(t.ID, arg) || strings.EqualFold(t.Title, arg) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous (%d matches), use more of the id", arg, len(matches))
	}
}
