package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyAsset      = "asset"
	KeyOutput     = "output"
	KeyFormat     = "format"
	KeyProduct    = "product"
	KeyBytes      = "bytes"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Asset(p string) slog.Attr        { return slog.String(KeyAsset, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Product(name string) slog.Attr   { return slog.String(KeyProduct, name) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
