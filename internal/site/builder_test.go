package site

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/govuksite/internal/config"
	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
	"git.home.luguber.info/inful/govuksite/internal/metrics"
)

const testLogo = "<svg xmlns=\"http://www.w3.org/2000/svg\" role=\"img\">\n  <title>Dept &amp; Trade ✓</title>\n  <path d=\"M0 0h10v10H0z\"/>\n</svg>\n"

// newSiteDir lays out docs/assets/dit-logo.svg under a temp dir and returns it.
func newSiteDir(t *testing.T, logo string) string {
	t.Helper()
	dir := t.TempDir()
	assets := filepath.Join(dir, "docs", "assets")
	require.NoError(t, os.MkdirAll(assets, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "dit-logo.svg"), []byte(logo), 0o600))
	return dir
}

type fakeRecorder struct {
	durations int
	outcomes  []metrics.BuildOutcomeLabel
	logoBytes int
}

func (f *fakeRecorder) ObserveBuildDuration(time.Duration) { f.durations++ }
func (f *fakeRecorder) IncBuildOutcome(o metrics.BuildOutcomeLabel) { f.outcomes = append(f.outcomes, o) }
func (f *fakeRecorder) SetLogoBytes(n int) { f.logoBytes = n }

func TestBuild_InlinesLogoVerbatim(t *testing.T) {
	dir := newSiteDir(t, testLogo)

	opts, _, err := NewBuilder(config.Default(), WithWorkDir(dir)).Build()
	require.NoError(t, err)
	assert.Equal(t, testLogo, opts.Header.OrganisationLogo)
}

func TestBuild_DefaultsMatchFinalVariant(t *testing.T) {
	dir := newSiteDir(t, testLogo)

	opts, settings, err := NewBuilder(nil, WithWorkDir(dir)).Build()
	require.NoError(t, err)

	assert.Equal(t, "/assets/dit-favicon.png", opts.Icons.Shortcut)
	assert.Equal(t, "stream-unzip", opts.Header.ProductName)
	require.NotNil(t, opts.ServiceNavigation)
	assert.Equal(t, "stream-unzip", opts.ServiceNavigation.ServiceName)
	require.NotNil(t, opts.Footer)
	assert.Equal(t, []FooterItem{
		{Href: config.RepositoryURL, Text: "GitHub repository for stream-unzip"},
		{Href: config.OrganisationURL, Text: "Created by the Department for Business and Trade (DBT)"},
	}, opts.Footer.Meta.Items)
	assert.Equal(t, []string{"/assets/styles.css"}, opts.Stylesheets)

	assert.Equal(t, Dirs{Input: "docs"}, settings.Dir)
	assert.Equal(t, []string{"./docs/assets", "./docs/CNAME"}, settings.PassthroughCopy)
}

func TestBuild_MissingAssetIsFatal(t *testing.T) {
	cfg := config.Default()
	cfg.Header.LogoPath = "does/not/exist.svg"
	rec := &fakeRecorder{}

	opts, settings, err := NewBuilder(cfg, WithWorkDir(t.TempDir()), WithRecorder(rec)).Build()
	require.Error(t, err)
	assert.True(t, foundation.IsAssetReadFailure(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, PluginOptions{}, opts)
	assert.Equal(t, GeneratorSettings{}, settings)
	assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeFailed}, rec.outcomes)

	ce, ok := foundation.AsClassified(err)
	require.True(t, ok)
	assert.True(t, ce.IsFatal())
	assert.False(t, ce.CanRetry())
}

func TestBuild_DirectoryAsLogoFails(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	cfg := config.Default()
	cfg.Header.LogoPath = "docs/assets"

	_, _, err := NewBuilder(cfg, WithWorkDir(dir)).Build()
	require.Error(t, err)
	assert.True(t, foundation.IsAssetReadFailure(err))
}

func TestBuild_NavigationOrderPreserved(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	cfg := config.Default()
	cfg.Navigation = []config.NavigationEntry{
		{Label: "Zebra", Path: "/z/"},
		{Label: "Apple", Path: "/a/"},
		{Label: "Mango", Path: "/m/"},
	}

	opts, _, err := NewBuilder(cfg, WithWorkDir(dir)).Build()
	require.NoError(t, err)
	assert.Equal(t, []NavigationItem{
		{Text: "Zebra", Href: "/z/"},
		{Text: "Apple", Href: "/a/"},
		{Text: "Mango", Href: "/m/"},
	}, opts.ServiceNavigation.Navigation)
}

func TestBuild_StylesheetsPassedThroughUnmodified(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	cfg := config.Default()
	cfg.Stylesheets = []string{"/b.css", "/a.css", "/b.css"}

	opts, _, err := NewBuilder(cfg, WithWorkDir(dir)).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"/b.css", "/a.css", "/b.css"}, opts.Stylesheets)
}

func TestBuild_OptionalSectionsOmitted(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	cfg := config.Default()
	cfg.ServiceName = ""
	cfg.Navigation = nil
	cfg.Footer = nil
	cfg.Stylesheets = nil

	opts, _, err := NewBuilder(cfg, WithWorkDir(dir)).Build()
	require.NoError(t, err)
	assert.Nil(t, opts.ServiceNavigation)
	assert.Nil(t, opts.Footer)
	assert.Nil(t, opts.Stylesheets)
}

func TestBuild_TemplateEngineAlwaysNunjucks(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	variants := map[string]*config.SiteConfig{
		"default": config.Default(),
		"with layouts": func() *config.SiteConfig {
			c := config.Default()
			c.Generator.Layouts = "../node_modules/@x-govuk/govuk-eleventy-plugin/layouts"
			c.Generator.Input = "src"
			return c
		}(),
		"bare": {Header: config.HeaderConfig{LogoPath: "docs/assets/dit-logo.svg"}},
	}

	for name, cfg := range variants {
		t.Run(name, func(t *testing.T) {
			_, settings, err := NewBuilder(cfg, WithWorkDir(dir)).Build()
			require.NoError(t, err)
			assert.Equal(t, TemplateEngine, settings.DataTemplateEngine)
			assert.Equal(t, TemplateEngine, settings.HTMLTemplateEngine)
			assert.Equal(t, TemplateEngine, settings.MarkdownTemplateEngine)
		})
	}
}

func TestBuild_ResultDoesNotAliasConfig(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	cfg := config.Default()
	b := NewBuilder(cfg, WithWorkDir(dir))

	opts, settings, err := b.Build()
	require.NoError(t, err)
	cfg.Stylesheets[0] = "/mutated.css"
	cfg.Generator.Passthrough[0] = "mutated"

	assert.Equal(t, "/assets/styles.css", opts.Stylesheets[0])
	assert.Equal(t, "./docs/assets", settings.PassthroughCopy[0])
}

func TestBuild_RecordsMetrics(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	rec := &fakeRecorder{}

	_, _, err := NewBuilder(nil, WithWorkDir(dir), WithRecorder(rec)).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.durations)
	assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeSuccess}, rec.outcomes)
	assert.Equal(t, len(testLogo), rec.logoBytes)
}

func TestBuild_AbsoluteLogoPathIgnoresWorkDir(t *testing.T) {
	dir := newSiteDir(t, testLogo)
	cfg := config.Default()
	cfg.Header.LogoPath = filepath.Join(dir, "docs", "assets", "dit-logo.svg")

	opts, _, err := NewBuilder(cfg, WithWorkDir(t.TempDir())).Build()
	require.NoError(t, err)
	assert.Equal(t, testLogo, opts.Header.OrganisationLogo)
}
