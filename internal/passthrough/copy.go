// Package passthrough executes passthrough copy rules: files and directories
// copied byte-for-byte from the content directory into the build output.
package passthrough

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
	"git.home.luguber.info/inful/govuksite/internal/logfields"
)

// Copy applies each rule. A rule path is copied to outputDir joined with the
// path relative to inputDir, so "./docs/assets" with input "docs" lands in
// "<output>/assets". Rules outside inputDir keep their base name.
func Copy(rules []string, inputDir, outputDir string) error {
	for _, rule := range rules {
		dst := filepath.Join(outputDir, destination(rule, inputDir))
		if err := copyPath(rule, dst); err != nil {
			return foundation.FileSystemError("passthrough copy failed").
				WithContext("source", rule).
				WithContext("destination", dst).
				WithCause(err).
				Build()
		}
		slog.Info("Copied passthrough path", logfields.Path(rule), logfields.Output(dst))
	}
	return nil
}

func destination(rule, inputDir string) string {
	rel, err := filepath.Rel(filepath.Clean(inputDir), filepath.Clean(rule))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(rule)
	}
	return rel
}

func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CopyDir(src, dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return copyFile(src, dst)
}

// CopyDir recursively copies a directory tree.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file from src to dst, preserving its mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src) // #nosec G304 -- passthrough sources come from the site config.
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode().Perm())
}
