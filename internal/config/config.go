package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
)

// Load reads site inputs from path on top of Default().
// An empty path returns the defaults unchanged.
func Load(path string) (*SiteConfig, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		msg := "failed to read site config"
		if os.IsNotExist(err) {
			msg = "site config not found"
		}
		return nil, foundation.ConfigError(msg).
			WithContext("path", path).
			WithCause(err).
			Build()
	}

	if err := decode(data, cfg); err != nil {
		return nil, foundation.ConfigError("failed to parse site config").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	return cfg, nil
}

// decode expands ${VAR} references and strictly unmarshals into cfg.
// Sequences in the document replace the defaults rather than extending them.
func decode(data []byte, cfg *SiteConfig) error {
	dec := yaml.NewDecoder(strings.NewReader(expandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// envRef matches only the braced ${NAME} form; a bare $ is literal text.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(ref[2 : len(ref)-1])
	})
}

// Init writes the default site config to path as YAML.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return foundation.ConfigError("site config already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	var buf bytes.Buffer
	buf.WriteString("# Site inputs for the GOV.UK documentation build.\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return foundation.InternalError("failed to marshal default site config").WithCause(err).Build()
	}
	if err := enc.Close(); err != nil {
		return foundation.InternalError("failed to marshal default site config").WithCause(err).Build()
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return foundation.FileSystemError("failed to write site config").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	return nil
}

// DefaultPath is picked up automatically when present in the working directory.
const DefaultPath = "site.yaml"

// Resolve returns the config path to load. An explicit path always wins;
// otherwise DefaultPath is used if it exists, else "" (built-in defaults).
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}
