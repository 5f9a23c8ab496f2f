// Package errors provides the classified error primitives used across govuksite.
//
// A ClassifiedError carries a category, a severity, a retry strategy and
// structured context alongside the underlying cause. Errors are built with a
// fluent builder:
//
//	err := errors.AssetError("logo asset unreadable").
//		WithContext("path", logoPath).
//		WithCause(ioErr).
//		Build()
//
// The CLI adapter turns a classified error into a user-facing message and an
// exit code.
package errors
