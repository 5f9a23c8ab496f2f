package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/govuksite/internal/config"
	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
	"git.home.luguber.info/inful/govuksite/internal/metrics"
	"git.home.luguber.info/inful/govuksite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output   string        `short:"o" required:"" help:"File the document is written to on every rebuild" type:"path"`
	Format   string        `short:"f" help:"Output format (json|yaml); inferred from --output when omitted"`
	WorkDir  string        `name:"work-dir" help:"Resolve relative asset paths against this directory" type:"path"`
	Debounce time.Duration `help:"Quiet period before rebuilding" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	format, err := resolveFormat(w.Format, w.Output)
	if err != nil {
		return err
	}
	req := buildRequest{
		configPath: root.Config,
		workDir:    w.WorkDir,
		output:     w.Output,
		format:     format,
		recorder:   metrics.NoopRecorder{},
	}
	rebuild := func(context.Context) error {
		r := req
		r.buildID = uuid.NewString()
		return runBuild(g, r)
	}

	// The first build must succeed; later failures are logged and the previous output kept.
	if err := rebuild(ctx); err != nil {
		return err
	}

	paths, err := watchedPaths(root.Config, w.WorkDir)
	if err != nil {
		return err
	}
	watcher, err := watch.New(paths, w.Debounce, rebuild)
	if err != nil {
		return foundation.InternalError("failed to create watcher").WithCause(err).Build()
	}
	if err := watcher.Start(ctx); err != nil {
		_ = watcher.Stop()
		return foundation.FileSystemError("failed to start watcher").WithCause(err).Build()
	}
	slog.Info("Watching for changes", slog.Any("paths", paths))

	<-ctx.Done()
	slog.Info("Stopping watcher")
	return watcher.Stop()
}

// watchedPaths lists the site config (when one is used) and the logo asset.
func watchedPaths(configFlag, workDir string) ([]string, error) {
	cfgPath := config.Resolve(configFlag)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	paths := []string{inWorkDir(workDir, cfg.Header.LogoPath)}
	if cfgPath != "" {
		paths = append(paths, cfgPath)
	}
	return paths, nil
}
