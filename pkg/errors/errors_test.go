package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jive-vlbi/ptboot/pkg/errors"
)

func TestNewError(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "cannot load config")

	assert.Equal(t, "[CONFIG_LOAD] cannot load config", err.Error())
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("no such file")
	err := errors.Wrapf(cause, errors.ErrTemplateRead, "cannot read template %s", "parseltongue.in")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "parseltongue.in")
	assert.Contains(t, err.Error(), "no such file")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.New(errors.ErrEnvSource, "sourcing failed")
	target := errors.New(errors.ErrEnvSource, "different message")

	assert.ErrorIs(t, err, target)
	assert.False(t, errors.IsErrorCode(err, errors.ErrEnvApply))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileCreate, "cannot write").
		WithDetail("path", "/usr/local/bin/parseltongue")

	assert.Equal(t, "/usr/local/bin/parseltongue", err.Details["path"])
}
