package site

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
)

// Document bundles both build results for hand-off to the external pipeline.
type Document struct {
	Plugin    PluginOptions     `json:"plugin" yaml:"plugin"`
	Generator GeneratorSettings `json:"generator" yaml:"generator"`
}

// Format selects the encoding of a Document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", foundation.ValidationError("unsupported output format").
			WithContext("format", s).
			Build()
	}
}

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// BuildDocument runs b.Build and wraps the result.
func BuildDocument(b *Builder) (Document, error) {
	opts, settings, err := b.Build()
	if err != nil {
		return Document{}, err
	}
	return Document{Plugin: opts, Generator: settings}, nil
}

// Encode writes doc to w. JSON output leaves HTML unescaped so the logo markup stays literal.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return foundation.InternalError("failed to encode site document").WithCause(err).Build()
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return foundation.InternalError("failed to encode site document").WithCause(err).Build()
		}
		if err := enc.Close(); err != nil {
			return foundation.InternalError("failed to encode site document").WithCause(err).Build()
		}
		return nil
	default:
		return foundation.ValidationError("unsupported output format").
			WithContext("format", string(format)).
			Build()
	}
}

// WriteFile atomically replaces path with the encoded document.
func WriteFile(path string, doc Document, format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return writeFailure(path, err)
	}
	defer func() {
		// no-op once committed
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(buf.Bytes()); err != nil {
		return writeFailure(path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return writeFailure(path, err)
	}
	return nil
}

func writeFailure(path string, err error) error {
	return foundation.FileSystemError("failed to write site document").
		WithContext("path", path).
		WithCause(err).
		Build()
}
