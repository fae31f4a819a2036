package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gearset/internal/config"
	"github.com/udisondev/gearset/internal/data"
	"github.com/udisondev/gearset/internal/db"
	"github.com/udisondev/gearset/internal/engine"
	"github.com/udisondev/gearset/internal/snapshot"
	"github.com/udisondev/gearset/internal/stat"
	"github.com/udisondev/gearset/internal/tracker"
)

type options struct {
	configPath string
	catalog    string
	dir        string
	watch      bool
	workers    int
	job        string
	items      bool
	files      []string
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	var opts options
	flag.StringVar(&opts.configPath, "config", config.Path(), "config file (env "+config.EnvPath+")")
	flag.StringVar(&opts.catalog, "catalog", "", "catalog YAML, overrides catalog_path")
	flag.StringVar(&opts.dir, "dir", "", "snapshot directory, overrides snapshot_dir")
	flag.BoolVar(&opts.watch, "watch", false, "poll the snapshot directory until interrupted")
	flag.IntVar(&opts.workers, "workers", 0, "parallel computations, overrides workers")
	flag.StringVar(&opts.job, "job", "", "compute every character as this job (abbreviation, e.g. WHM)")
	flag.BoolVar(&opts.items, "items", false, "print the per-item breakdown")
	flag.Parse()
	opts.files = flag.Args()

	if err := run(ctx, opts); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(&cfg, opts)

	job, err := resolveJob(opts.job)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	cat, err := data.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	slog.Info("catalog loaded", "items", cat.ItemCount(), "materia", cat.MateriaCount())

	var store *db.GearsetRepository
	if cfg.Database.Enabled {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer database.Close()
		store = database.Gearsets()
		slog.Info("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
	}

	p := printer{cat: cat, items: opts.items}
	if opts.watch {
		return watch(ctx, cfg, cat, store, job, p)
	}
	return once(ctx, cfg, cat, store, job, p, opts.files)
}

// resolveJob maps a -job abbreviation to its ClassJob id; 0 means no override.
func resolveJob(abbrev string) (uint8, error) {
	if abbrev == "" {
		return 0, nil
	}
	job, ok := stat.JobByAbbrev(abbrev)
	if !ok {
		return 0, fmt.Errorf("unknown job %q", abbrev)
	}
	return job.ID, nil
}

// withJob returns snap computed as job. The set is copied; 0 keeps snap as is.
func withJob(snap snapshot.Snapshot, job uint8) snapshot.Snapshot {
	if job == 0 || snap.Set == nil {
		return snap
	}
	set := *snap.Set
	set.Job = job
	snap.Set = &set
	return snap
}

// jobSource applies a job override to everything src yields.
type jobSource struct {
	src tracker.Source
	job uint8
}

func (s jobSource) Snapshots(ctx context.Context) ([]snapshot.Snapshot, error) {
	snaps, err := s.src.Snapshots(ctx)
	if err != nil {
		return nil, err
	}
	for i := range snaps {
		snaps[i] = withJob(snaps[i], s.job)
	}
	return snaps, nil
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.catalog != "" {
		cfg.CatalogPath = opts.catalog
	}
	if opts.dir != "" {
		cfg.SnapshotDir = opts.dir
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// once computes every given snapshot file (or the whole snapshot dir) and
// prints one report per character in input order.
func once(ctx context.Context, cfg config.Config, cat *data.Catalog, store *db.GearsetRepository, job uint8, p printer, files []string) error {
	if len(files) == 0 {
		var err error
		files, err = snapshot.NewDir(cfg.SnapshotDir).Files()
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		slog.Warn("no snapshot files", "dir", cfg.SnapshotDir)
		return nil
	}

	snaps := make([]snapshot.Snapshot, len(files))
	results := make([]*engine.Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			snap, err := snapshot.Load(path)
			if err != nil {
				return err
			}
			snap = withJob(snap, job)
			snaps[i] = snap
			if !snap.Available() {
				return nil
			}

			res := engine.Compute(snap.Set, cat)
			results[i] = res
			if store != nil {
				if err := store.Save(gctx, snap.CharacterID, res); err != nil {
					return fmt.Errorf("saving character %d: %w", snap.CharacterID, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range files {
		if err := p.write(os.Stdout, snaps[i], results[i]); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// watch runs the poller until ctx is cancelled.
func watch(ctx context.Context, cfg config.Config, cat *data.Catalog, store *db.GearsetRepository, job uint8, p printer) error {
	var st tracker.Store
	if store != nil {
		st = store
	}

	dir := snapshot.NewDir(cfg.SnapshotDir)
	var src tracker.Source = dir
	if job != 0 {
		src = jobSource{src: dir, job: job}
	}

	poller := tracker.NewPoller(src, cat, st, cfg.PollInterval)
	poller.SetNumWorkers(cfg.Workers)
	poller.OnChange(func(snap snapshot.Snapshot, res *engine.Result) {
		if err := p.write(os.Stdout, snap, res); err != nil {
			slog.Error("writing report", "character", snap.CharacterID, "err", err)
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Start(gctx)
	})

	slog.Info("watching snapshots", "dir", dir.Path(), "interval", cfg.PollInterval)
	return g.Wait()
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
