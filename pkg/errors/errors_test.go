package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/edna/pkg/errors"
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
			name:    "template_not_found",
			code:    errors.ErrTemplateNotFound,
			message: "template web not found",
			wantStr: "[TEMPLATE_NOT_FOUND] template web not found",
		},
		{
			name:    "invalid_config",
			code:    errors.ErrConfigValid,
			message: "target must be project",
			wantStr: "[CONFIG_INVALID] target must be project",
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

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrCopy, "copy failed"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrCopy, "copy %s failed", "x"))
	})

	t.Run("wrapped_error_is_reachable", func(t *testing.T) {
		base := stderrors.New("disk full")
		err := errors.Wrapf(base, errors.ErrFileWrite, "failed to write %s", "edna.config.json")

		require.NotNil(t, err)
		assert.Equal(t, "[FILE_WRITE] failed to write edna.config.json: disk full", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrTemplateExists, "exists"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateExists))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, errors.ErrTemplateExists, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrTemplateExists, "")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "bad target").
		WithDetail("path", "/templates/web/edna.config.json").
		WithDetail("target", "library")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/templates/web/edna.config.json", details["path"])
	assert.Equal(t, "library", details["target"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, errors.ExitCode(nil))
	assert.Equal(t, 1, errors.ExitCode(errors.New(errors.ErrCopy, "copy failed")))
	assert.Equal(t, 1, errors.ExitCode(stderrors.New("anything")))
}
