package cache

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes returned by this package.
const (
	CodeInvalidCapacity errors.ErrorCode = "FORGETMAP_INVALID_CAPACITY"
	CodeNoLoader        errors.ErrorCode = "FORGETMAP_NO_LOADER"
	CodeLoaderFailed    errors.ErrorCode = "FORGETMAP_LOADER_FAILED"
)

const (
	msgInvalidCapacity = "invalid capacity: must be greater than 0"
	msgNoLoader        = "no Loader configured"
	msgLoaderFailed    = "loader function failed"
)

// NewErrInvalidCapacity reports a non-positive Options.Capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(CodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrNoLoader reports LookupOrLoad on a cache built without a Loader.
func NewErrNoLoader() error {
	return errors.NewWithField(CodeNoLoader, msgNoLoader, "operation", "LookupOrLoad")
}

// NewErrLoaderFailed wraps an error returned by Options.Loader.
func NewErrLoaderFailed(key any, cause error) error {
	return errors.Wrap(cause, CodeLoaderFailed, msgLoaderFailed).
		WithContext("key", key).
		AsRetryable()
}

// IsConfigError reports whether err comes from invalid Options.
func IsConfigError(err error) bool {
	return errors.HasCode(err, CodeInvalidCapacity)
}

// IsLoaderError reports whether err comes from the LookupOrLoad path.
func IsLoaderError(err error) bool {
	return errors.HasCode(err, CodeNoLoader) || errors.HasCode(err, CodeLoaderFailed)
}

// ErrorCode extracts the error code from err, or "" if it has none.
func ErrorCode(err error) errors.ErrorCode {
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
