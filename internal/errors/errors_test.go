package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

type coder interface {
	error
	isCoded()
}

func (e *codedError) isCoded() {}

func TestAsType_FindsInterfaceThroughWrapsAndJoins(t *testing.T) {
	cause := &codedError{code: "CUSTOMER_NOT_FOUND"}
	err := Wrap(Join(New("store"), Wrapf(cause, "id=%d", 7)), "load customer")

	found, ok := AsType[coder](err)
	require.True(t, ok)
	assert.Same(t, cause, found)
	assert.True(t, Is(err, cause))

	_, ok = AsType[coder](New("plain"))
	assert.False(t, ok)
}

func TestAnnotationKeepsNilAndRecordsStack(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
	assert.NoError(t, WithStack(nil))

	err := WithStack(New("boom"))
	assert.Equal(t, "boom", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestAnnotationKeepsNilAndRecordsStack")

	assert.Contains(t, fmt.Sprintf("%+v", Errorf("bad %s", "input")), "bad input")
}
