package commands

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/govuksite/internal/config"
	"git.home.luguber.info/inful/govuksite/internal/logfields"
	"git.home.luguber.info/inful/govuksite/internal/metrics"
	"git.home.luguber.info/inful/govuksite/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Write the document to this file instead of stdout" type:"path"`
	Format      string `short:"f" help:"Output format (json|yaml); inferred from --output when omitted"`
	WorkDir     string `name:"work-dir" help:"Resolve relative asset paths against this directory" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus textfile metrics here after the build" type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	format, err := resolveFormat(b.Format, b.Output)
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if b.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	buildErr := runBuild(g, buildRequest{
		configPath: root.Config,
		workDir:    b.WorkDir,
		output:     b.Output,
		format:     format,
		recorder:   recorder,
		buildID:    uuid.NewString(),
	})

	if prom != nil {
		if err := prom.WriteTextfile(b.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(b.MetricsFile), logfields.Error(err))
		}
	}
	return buildErr
}

type buildRequest struct {
	configPath string
	workDir    string
	output     string
	format     site.Format
	recorder   metrics.Recorder
	buildID    string
}

// runBuild loads the site config, assembles the document and hands it off.
func runBuild(g *Global, req buildRequest) error {
	start := time.Now()
	cfgPath := config.Resolve(req.configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	slog.Info("Building site configuration",
		logfields.BuildID(req.buildID),
		logfields.Path(cfgPath),
		logfields.Product(cfg.Header.ProductName))

	builder := site.NewBuilder(cfg, site.WithWorkDir(req.workDir), site.WithRecorder(req.recorder))
	doc, err := site.BuildDocument(builder)
	if err != nil {
		return err
	}

	if req.output == "" {
		if err := site.Encode(g.stdout(), doc, req.format); err != nil {
			return err
		}
	} else if err := site.WriteFile(req.output, doc, req.format); err != nil {
		return err
	}

	slog.Info("Site configuration built",
		logfields.BuildID(req.buildID),
		logfields.Output(outputName(req.output)),
		logfields.Format(string(req.format)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

func resolveFormat(flag, output string) (site.Format, error) {
	if flag != "" {
		return site.ParseFormat(flag)
	}
	if output != "" {
		return site.FormatForPath(output), nil
	}
	return site.FormatJSON, nil
}

func outputName(output string) string {
	if output == "" {
		return "stdout"
	}
	return output
}
