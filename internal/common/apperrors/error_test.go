package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.Equal(t, "msg", ErrBase.New("msg").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrFirstLevel := ErrBase.New("first level")
	assert.Equal(t, "first level", ErrFirstLevel.Error())
	assert.ErrorIs(t, ErrFirstLevel, ErrBase)

	ErrOther := New("other error")
	ErrOtherMsg := ErrOther.Msg("other error msg")
	ErrWrapped := ErrFirstLevel.Err(ErrOtherMsg)
	assert.Equal(t, "first level", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, ErrFirstLevel)
	assert.ErrorIs(t, ErrWrapped, ErrOther)
	assert.ErrorIs(t, ErrWrapped, ErrOtherMsg)

	goErr := errors.New("plain error")
	ErrWrapped = ErrFirstLevel.MsgErr("msg", goErr)
	assert.Equal(t, "msg", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, goErr)
}

func TestErrorAll(t *testing.T) {
	base := New("request failed")
	cause := fmt.Errorf("connection refused")
	wrapped := base.MsgErr("get logbook", cause)

	assert.Equal(t, "get logbook", wrapped.Error())
	assert.Contains(t, wrapped.ErrorAll(), "request failed")
	assert.Contains(t, wrapped.ErrorAll(), "connection refused")
	assert.Len(t, wrapped.UnwrapAll(), 2)
}

func TestStatusCode(t *testing.T) {
	base := New("not found").SetStatusCode(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, base.StatusCode())

	// status code is inherited through Msg and New
	assert.Equal(t, http.StatusNotFound, base.Msg("logbook missing").StatusCode())
	assert.Equal(t, http.StatusNotFound, base.New("tag missing").StatusCode())

	// SetStatusCode does not mutate the original
	changed := base.SetStatusCode(http.StatusConflict)
	assert.Equal(t, http.StatusConflict, changed.StatusCode())
	assert.Equal(t, http.StatusNotFound, base.StatusCode())
}
