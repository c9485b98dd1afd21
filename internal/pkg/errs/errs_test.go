//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"gearshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("item is not available")

	t.Run("mark is visible through Is", func(t *testing.T) {
		cause := errs.New("availability flag is false")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.Equal(t, cause.Error(), marked.Error(), "marking must not change the message")
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		marked := errs.Wrap(errs.Mark(errs.New("inner"), sentinel), "outer")
		assert.True(t, errs.Is(marked, sentinel))
	})

	t.Run("nil cause collapses to the mark itself", func(t *testing.T) {
		marked := errs.Mark(nil, sentinel)
		require.Equal(t, sentinel, marked)
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		marked := errs.Mark(errs.New("inner"), sentinel)
		assert.False(t, errs.Is(marked, errs.New("other")))
	})
}

func TestIs(t *testing.T) {
	t.Run("plain wrap chains still match", func(t *testing.T) {
		sentinel := errors.New("no rows")
		assert.True(t, errs.Is(errs.Wrap(sentinel, "query users"), sentinel))
	})
}
