package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: 7}, "outer")

	coded, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, coded.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestIs_ThroughWrap(t *testing.T) {
	sentinel := New("sentinel")
	assert.True(t, Is(Wrap(sentinel, "context"), sentinel))
}
