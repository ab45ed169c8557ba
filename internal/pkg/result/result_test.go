package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_OkAndErrVariants(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	assert.Equal(t, 42, ok.Value())
	assert.Nil(t, ok.Err())

	failed := Err[int]("boom", map[string]any{"reason": "test"})
	assert.True(t, failed.IsErr())
	assert.Equal(t, "boom", failed.Err().Message)
	assert.Equal(t, "test", failed.Err().Data["reason"])
	assert.Equal(t, 0, failed.Value())
}

func TestResult_AndThenShortCircuitsOnError(t *testing.T) {
	called := false
	res := Err[int]("boom", nil).AndThen(func(int) Result[int] {
		called = true
		return Ok(1)
	})

	assert.True(t, res.IsErr())
	assert.False(t, called)
}

func TestResult_AndThenChainsOnSuccess(t *testing.T) {
	res := Ok(2).AndThen(func(v int) Result[int] {
		return Ok(v * 10)
	})

	assert.Equal(t, 20, res.Value())
}

func TestResult_OnErrorRunsHookAndPassesThrough(t *testing.T) {
	var seen *Error
	res := Err[string]("boom", map[string]any{"k": "v"}).OnError(func(e *Error) {
		seen = e
	})

	assert.True(t, res.IsErr())
	assert.NotNil(t, seen)
	assert.Equal(t, "boom", seen.Message)

	seen = nil
	Ok("fine").OnError(func(e *Error) { seen = e })
	assert.Nil(t, seen)
}

func TestResult_OnSuccessRunsHookOnlyOnSuccess(t *testing.T) {
	var got string
	Ok("hello").OnSuccess(func(v string) { got = v })
	assert.Equal(t, "hello", got)

	got = ""
	Err[string]("boom", nil).OnSuccess(func(v string) { got = v })
	assert.Empty(t, got)
}

func TestResult_RescueRecoversError(t *testing.T) {
	res := Err[int]("boom", nil).Rescue(func(*Error) Result[int] {
		return Ok(7)
	})

	assert.True(t, res.IsOk())
	assert.Equal(t, 7, res.Value())

	untouched := Ok(3).Rescue(func(*Error) Result[int] {
		return Ok(99)
	})
	assert.Equal(t, 3, untouched.Value())
}

func TestThen_ChangesValueType(t *testing.T) {
	res := Then(Ok(5), func(v int) Result[string] {
		return Ok("five")
	})
	assert.Equal(t, "five", res.Value())

	errRes := Then(Err[int]("boom", nil), func(int) Result[string] {
		return Ok("unreachable")
	})
	assert.True(t, errRes.IsErr())
	assert.Equal(t, "boom", errRes.Err().Message)
}

func TestError_WithCopiesContext(t *testing.T) {
	base := &Error{Message: "boom", Data: map[string]any{"a": 1}}
	enriched := base.With("b", 2)

	assert.Equal(t, 1, enriched.Data["a"])
	assert.Equal(t, 2, enriched.Data["b"])
	_, present := base.Data["b"]
	assert.False(t, present)
}

func TestFromError_WrapsPlainError(t *testing.T) {
	res := FromError[int](errors.New("plain failure"), map[string]any{"id": "x"})

	assert.True(t, res.IsErr())
	assert.Equal(t, "plain failure", res.Err().Message)
	assert.Equal(t, "x", res.Err().Data["id"])
}
