package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrTemplateNotFound, "no such template")

	assert.Equal(t, ErrTemplateNotFound, err.Code)
	assert.Equal(t, "no such template", err.Message)
	assert.Equal(t, "[TEMPLATE_NOT_FOUND] no such template", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrSigningUnsupported, "unsupported signing option: %s", "magic")

	assert.Equal(t, "[SIGNING_UNSUPPORTED] unsupported signing option: magic", err.Error())
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := Wrap(underlying, ErrFileCopy, "failed to copy entry")

	require.NotNil(t, err)
	assert.Equal(t, "[FILE_COPY] failed to copy entry: permission denied", err.Error())
	assert.True(t, errors.Is(err, underlying))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileCopy, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrFileCopy, "should be %s", "nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrManifestParse, "bad json")

	assert.True(t, IsErrorCode(err, ErrManifestParse))
	assert.False(t, IsErrorCode(err, ErrManifestWrite))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrManifestParse))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := New(ErrAccountCreate, "keygen failed")
	outer := fmt.Errorf("pipeline: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrAccountCreate))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrInstallFailed, GetErrorCode(New(ErrInstallFailed, "npm exited 1")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrDirCreate, "mkdir failed").WithDetail("path", "/tmp/demo")

	assert.Equal(t, "/tmp/demo", err.Details["path"])
}

func TestErrorsIsByCode(t *testing.T) {
	a := New(ErrTemplateUnsupported, "one")
	b := New(ErrTemplateUnsupported, "another")

	assert.True(t, errors.Is(a, b))
}
