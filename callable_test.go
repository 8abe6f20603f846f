package fluent_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/probablyarth/fluent-go"
)

func TestThen(t *testing.T) {
	fn := fluent.Then(func() (string, error) {
		return "42", nil
	}, strconv.Atoi)

	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestThenIsLazy(t *testing.T) {
	var calls int
	fn := fluent.Then(func() (int, error) {
		calls++
		return 1, nil
	}, func(v int) (int, error) {
		return v + 1, nil
	})
	assert.Equal(t, 0, calls)

	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, calls)
}

func TestThenFirstStepFails(t *testing.T) {
	errBoom := errors.New("boom")
	var mapped bool
	fn := fluent.Then(func() (int, error) {
		return 0, errBoom
	}, func(v int) (string, error) {
		mapped = true
		return "", nil
	})

	_, err := fn()
	assert.Equal(t, errBoom, err)
	assert.False(t, mapped)
}

func TestThenSecondStepFails(t *testing.T) {
	_, err := fluent.Then(func() (string, error) {
		return "not a number", nil
	}, strconv.Atoi)()

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestThenOverMemo(t *testing.T) {
	var calls int
	memo := fluent.MemoizeFunc(func() string {
		calls++
		return "7"
	})
	fn := fluent.Then(memo.Func(), strconv.Atoi)

	fn()
	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestThenNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		fluent.Then[int, int](nil, nil)
	})
}
