package site

import (
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
	"git.home.luguber.info/inful/govuksite/internal/logfields"
)

// readAsset returns the verbatim text of the file at path.
// The handle is released on both the success and the failure path.
func readAsset(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the site config.
	if err != nil {
		return "", assetReadFailure(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Debug("Failed to close asset", logfields.Asset(path), logfields.Error(cerr))
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", assetReadFailure(path, err)
	}
	if !utf8.Valid(data) {
		slog.Warn("Logo asset is not valid UTF-8; inlining bytes unchanged", logfields.Asset(path))
	}
	return string(data), nil
}

func assetReadFailure(path string, err error) error {
	return foundation.AssetError("failed to read logo asset").
		WithContext("path", path).
		WithCause(err).
		Build()
}
