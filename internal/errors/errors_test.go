package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := NewIOError(ErrCodeWriteFailed, "cannot write asset", errors.New("disk full")).
		WithEntry("hero").
		WithFile("public/brand/hero.svg")

	msg := err.Error()
	assert.Equal(t, "[ERR_WRITE_FAILED] entry:hero public/brand/hero.svg cannot write asset: disk full", msg)
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewValidationError(ErrCodeManifestInvalid, "duplicate entry"))

	assert.True(t, errors.Is(err, &Error{Type: ErrorTypeValidation, Code: ErrCodeManifestInvalid}))
	assert.False(t, errors.Is(err, &Error{Type: ErrorTypeValidation, Code: ErrCodeInvalidFlag}))
	assert.False(t, errors.Is(err, &Error{Type: ErrorTypeConfig, Code: ErrCodeManifestInvalid}))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewRenderError(ErrCodeRenderFailed, "render failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestWithContext(t *testing.T) {
	err := NewConfigError(ErrCodeConfigInvalid, "bad debounce").
		WithContext("value", "-1s").
		WithContext("key", "watch.debounce")

	require.Len(t, err.Context, 2)
	assert.Equal(t, "-1s", err.Context["value"])
}

func TestPredicates(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		recoverable bool
		validation  bool
		config      bool
	}{
		{"validation", NewValidationError(ErrCodeInvalidFlag, "x"), true, true, false},
		{"render", NewRenderError(ErrCodeRenderFailed, "x", nil), true, false, false},
		{"config", NewConfigError(ErrCodeConfigInvalid, "x"), false, false, true},
		{"io", NewIOError(ErrCodeWriteFailed, "x", nil), false, false, false},
		{"internal", NewInternalError(ErrCodeInternalError, "x", nil), false, false, false},
		{"plain", errors.New("x"), false, false, false},
		{"wrapped", fmt.Errorf("w: %w", NewConfigError(ErrCodeConfigInvalid, "x")), false, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.recoverable, IsRecoverable(tc.err))
			assert.Equal(t, tc.validation, IsValidation(tc.err))
			assert.Equal(t, tc.config, IsConfig(tc.err))
		})
	}
}

type recordingLogger struct {
	level  string
	msg    string
	fields []interface{}
}

func (r *recordingLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	r.level, r.msg, r.fields = "error", msg, fields
}

func (r *recordingLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	r.level, r.msg, r.fields = "warn", msg, fields
}

func TestHandler(t *testing.T) {
	logger := &recordingLogger{}
	h := NewHandler(logger)
	ctx := context.Background()

	h.Handle(ctx, NewRenderError(ErrCodeVerifyFailed, "unexpected element count", nil).WithEntry("navbar"))
	assert.Equal(t, "warn", logger.level)
	assert.Equal(t, []interface{}{"type", "render", "code", ErrCodeVerifyFailed, "entry", "navbar"}, logger.fields)

	h.Handle(ctx, NewIOError(ErrCodeWriteFailed, "write", nil).WithFile("a.svg"))
	assert.Equal(t, "error", logger.level)
	assert.Equal(t, "Error occurred", logger.msg)
	assert.Contains(t, logger.fields, "a.svg")

	h.Handle(ctx, errors.New("plain"))
	assert.Equal(t, "Unhandled error occurred", logger.msg)

	logger.msg = ""
	h.Handle(ctx, nil)
	assert.Empty(t, logger.msg)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	assert.False(t, c.HasErrors())
	assert.NoError(t, c.Err())

	first := errors.New("first")
	second := NewValidationError(ErrCodeInvalidFlag, "second")
	c.Add(first)
	c.Add(nil)
	c.Add(second)

	assert.True(t, c.HasErrors())
	assert.Len(t, c.Errors(), 2)
	assert.ErrorIs(t, c.Err(), first)
	assert.True(t, IsValidation(c.Err()))
}
