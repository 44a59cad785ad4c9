// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
		{
			name:    "style_error",
			code:    errors.ErrStyleInvalid,
			message: "empty style name",
			wantStr: "[STYLE_INVALID] empty style name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileCreate, "cannot create %s with mode %o", "out.txt", 0644)
	assert.Equal(t, "cannot create out.txt with mode 644", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "write failed")

		assert.Equal(t, errors.ErrFileWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_WRITE] write failed: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileCreate, "open %s", "out.txt")
		assert.Equal(t, "open out.txt", err.Message)
	})
}

func TestBadOutputPath(t *testing.T) {
	err := errors.BadOutputPath("/tmp/reports", "Printer")

	assert.Equal(t, errors.ErrBadOutputPath, err.Code)
	assert.Contains(t, err.Error(), `"/tmp/reports"`)
	assert.Contains(t, err.Error(), "Printer")
	assert.Equal(t, "/tmp/reports", err.Details[errors.DetailPath])
	assert.Equal(t, "Printer", err.Details[errors.DetailPrinter])
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("writing: %w", errors.BadOutputPath("/var", "Printer"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrBadOutputPath, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFileCreate, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrBadOutputPath))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrBadOutputPath))
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrThemeLoad, "bad theme").
		WithDetails(map[string]interface{}{"path": "theme.yaml", "line": 3})

	assert.Equal(t, errors.ErrThemeLoad, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "theme.yaml", details["path"])
	assert.Equal(t, 3, details["line"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestWithDetailOnZeroValue(t *testing.T) {
	err := &errors.PrinterError{Code: errors.ErrInternal, Message: "zero"}
	err.WithDetail("key", "value")
	assert.Equal(t, "value", err.Details["key"])
}
