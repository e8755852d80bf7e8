package result

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestEval(t *testing.T) {
	t.Parallel()

	ok := Eval(func() (int, error) { return 4, nil })
	assert.False(t, ok.IsErr())
	assert.Equal(t, 4, ok.Unwrap())

	failed := Eval(func() (int, error) { return 0, errBoom })
	require.True(t, failed.IsErr())
	assert.ErrorIs(t, failed.UnwrapErr(), errBoom)
}

func TestEvalRecoversPanic(t *testing.T) {
	t.Parallel()

	panicked := Eval(func() (int, error) { panic("worker died") })
	require.True(t, panicked.IsErr())
	assert.ErrorIs(t, panicked.UnwrapErr(), ErrPanic)
	assert.Contains(t, panicked.UnwrapErr().Error(), "worker died")

	panickedErr := Eval(func() (int, error) { panic(errBoom) })
	require.True(t, panickedErr.IsErr())
	assert.ErrorIs(t, panickedErr.UnwrapErr(), ErrPanic)
	assert.ErrorIs(t, panickedErr.UnwrapErr(), errBoom)

	var panicErr *PanicError
	require.ErrorAs(t, panickedErr.UnwrapErr(), &panicErr)
	assert.Equal(t, "Eval", panicErr.Name)
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, err := Success(110).Get()
	assert.NoError(t, err)
	assert.Equal(t, 110, v)

	v, err = Err[int](errBoom).Get()
	assert.ErrorIs(t, err, errBoom)
	assert.Zero(t, v)
}

func TestMapFlatMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Success(5), func(i int) int { return i * 2 })
	assert.Equal(t, 10, doubled.Unwrap())

	chained := FlatMap(doubled, func(i int) Result[int] { return Err[int](errBoom) })
	require.True(t, chained.IsErr())
	assert.ErrorIs(t, chained.UnwrapErr(), errBoom)

	assert.True(t, Map(chained, func(i int) int { return i + 1 }).IsErr())
}
