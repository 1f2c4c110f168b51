package di

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	provided struct{ v int }
	named    struct{ v int }
	lazily   struct{ v int }
	failing  struct{}
	replaced struct{ v int }
)

func TestProvideAndResolve(t *testing.T) {
	t.Parallel()

	assert.True(t, Provide(provided{v: 1}))
	// The first value wins, Override replaces.
	assert.False(t, Provide(provided{v: 2}))

	value, err := Resolve[provided]()
	require.NoError(t, err)
	assert.Equal(t, 1, value.v)
}

func TestProvideNamed(t *testing.T) {
	t.Parallel()

	assert.True(t, ProvideNamed("n", named{v: 1}))
	value, err := ResolveNamed[named]("n")
	require.NoError(t, err)
	assert.Equal(t, 1, value.v)

	_, err = ResolveNamed[named]("missing")
	assert.ErrorContains(t, err, "not declared")
}

func TestProvideLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	ProvideLazy(func() (lazily, error) {
		calls++
		return lazily{v: 42}, nil
	})

	for i := 0; i < 3; i++ {
		value, err := Resolve[lazily]()
		require.NoError(t, err)
		assert.Equal(t, 42, value.v)
	}
	assert.Equal(t, 1, calls)
}

func TestProvideLazyError(t *testing.T) {
	t.Parallel()

	ProvideLazy(func() (*failing, error) {
		return nil, errors.New("init failed")
	})

	_, err := Resolve[*failing]()
	assert.ErrorContains(t, err, "init failed")
}

func TestOverride(t *testing.T) {
	t.Parallel()

	assert.False(t, Override(replaced{v: 1}))
	assert.True(t, Override(replaced{v: 2}))

	value := MustResolve[replaced]()
	assert.Equal(t, 2, value.v)
}

func TestMustResolveMissing(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustResolveNamed[named]("nobody home")
	})
}
