package site

import (
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/govuksite/internal/config"
	"git.home.luguber.info/inful/govuksite/internal/logfields"
	"git.home.luguber.info/inful/govuksite/internal/metrics"
)

// Builder assembles the plugin options and generator settings for one build.
type Builder struct {
	cfg      *config.SiteConfig
	workDir  string
	recorder metrics.Recorder
}

// Option customizes a Builder.
type Option func(*Builder)

// WithWorkDir resolves relative asset paths against dir instead of the process working directory.
func WithWorkDir(dir string) Option {
	return func(b *Builder) { b.workDir = dir }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// NewBuilder creates a Builder for cfg. A nil cfg uses config.Default().
func NewBuilder(cfg *config.SiteConfig, opts ...Option) *Builder {
	if cfg == nil {
		cfg = config.Default()
	}
	b := &Builder{cfg: cfg, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build reads the logo asset once and returns freshly allocated options and settings.
// A missing or unreadable asset is an AssetReadFailure and no value is produced.
func (b *Builder) Build() (PluginOptions, GeneratorSettings, error) {
	start := time.Now()
	defer func() { b.recorder.ObserveBuildDuration(time.Since(start)) }()

	logoPath := b.assetPath(b.cfg.Header.LogoPath)
	logo, err := readAsset(logoPath)
	if err != nil {
		b.recorder.IncBuildOutcome(metrics.BuildOutcomeFailed)
		return PluginOptions{}, GeneratorSettings{}, err
	}
	b.recorder.SetLogoBytes(len(logo))

	opts := b.pluginOptions(logo)
	settings := b.generatorSettings()

	b.recorder.IncBuildOutcome(metrics.BuildOutcomeSuccess)
	slog.Debug("Assembled site configuration",
		logfields.Product(b.cfg.Header.ProductName),
		logfields.Asset(logoPath),
		logfields.Bytes(len(logo)))
	return opts, settings, nil
}

func (b *Builder) assetPath(p string) string {
	if b.workDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.workDir, p)
}

func (b *Builder) pluginOptions(logo string) PluginOptions {
	opts := PluginOptions{
		FontFamily: b.cfg.FontFamily,
		Icons:      Icons{Shortcut: b.cfg.Icons.Shortcut},
		Header: Header{
			OrganisationName: b.cfg.Header.OrganisationName,
			OrganisationLogo: logo,
			ProductName:      b.cfg.Header.ProductName,
		},
		Stylesheets: cloneStrings(b.cfg.Stylesheets),
	}

	if b.cfg.ServiceName != "" || len(b.cfg.Navigation) > 0 {
		nav := &ServiceNavigation{ServiceName: b.cfg.ServiceName}
		if len(b.cfg.Navigation) > 0 {
			nav.Navigation = make([]NavigationItem, 0, len(b.cfg.Navigation))
			for _, e := range b.cfg.Navigation {
				nav.Navigation = append(nav.Navigation, NavigationItem{Text: e.Label, Href: e.Path})
			}
		}
		opts.ServiceNavigation = nav
	}

	if len(b.cfg.Footer) > 0 {
		items := make([]FooterItem, 0, len(b.cfg.Footer))
		for _, l := range b.cfg.Footer {
			items = append(items, FooterItem{Href: l.URL, Text: l.Label})
		}
		opts.Footer = &Footer{Meta: FooterMeta{Items: items}}
	}
	return opts
}

func (b *Builder) generatorSettings() GeneratorSettings {
	return GeneratorSettings{
		DataTemplateEngine:     TemplateEngine,
		HTMLTemplateEngine:     TemplateEngine,
		MarkdownTemplateEngine: TemplateEngine,
		Dir: Dirs{
			Input:   b.cfg.Generator.Input,
			Layouts: b.cfg.Generator.Layouts,
		},
		PassthroughCopy: cloneStrings(b.cfg.Generator.Passthrough),
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
