package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	//
	err := Error(ENOROOT, "cannot render syllable %q", "x")
	assert.Equal(t, ENOROOT, Code(err))
	assert.Equal(t, `cannot render syllable "x"`, UserMessage(err))
	assert.Equal(t, `[124] no root selected: cannot render syllable "x"`, err.Error())
}

func TestWrappedErrorKeepsChain(t *testing.T) {
	base := errors.New("lookup failed")
	err := WrapError(base, EMISSING, "no letter %s", "qa")
	wrapped := fmt.Errorf("cli: %w", err)
	assert.True(t, errors.Is(wrapped, base))
	assert.Equal(t, EMISSING, Code(wrapped))
	assert.Equal(t, "no letter qa", UserMessage(wrapped))
	//
	err = WrapError(nil, EINVALID, "")
	assert.Equal(t, "[123] invalid", err.Error())
	assert.Equal(t, "invalid", UserMessage(err), "falls back to code text")
	assert.Equal(t, "", UserMessage(nil))
}
