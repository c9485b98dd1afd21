//go:build unit

package item_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	testCases := []struct {
		name        string
		itemName    string
		description string
		errIs       error
	}{
		{name: "valid item", itemName: "Drill", description: "Cordless drill"},
		{name: "empty name", itemName: "", description: "Cordless drill", errIs: item.ErrEmptyName},
		{name: "whitespace name", itemName: "   ", description: "Cordless drill", errIs: item.ErrEmptyName},
		{name: "empty description", itemName: "Drill", description: "", errIs: item.ErrEmptyDescription},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := item.NewItem(1, tc.itemName, tc.description, true, nil)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.itemName, actual.Name())
			assert.True(t, actual.Available())
			assert.True(t, actual.OwnedBy(1))
			assert.False(t, actual.OwnedBy(2))
		})
	}
}

func TestPatch(t *testing.T) {
	base := func(t *testing.T) *item.Item {
		t.Helper()
		i, err := item.NewItem(1, "Drill", "Cordless drill", true, nil)
		require.NoError(t, err)
		return i
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		i := base(t)
		name := "Hammer"
		i.Patch(&name, nil, nil)

		assert.Equal(t, "Hammer", i.Name())
		assert.Equal(t, "Cordless drill", i.Description())
		assert.True(t, i.Available())
	})

	t.Run("availability can be toggled off", func(t *testing.T) {
		i := base(t)
		available := false
		i.Patch(nil, nil, &available)

		assert.False(t, i.Available())
	})

	t.Run("blank name is ignored", func(t *testing.T) {
		i := base(t)
		blank := "  "
		i.Patch(&blank, nil, nil)

		assert.Equal(t, "Drill", i.Name())
	})
}

func TestNewComment(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid comment", func(t *testing.T) {
		c, err := item.NewComment(10, 2, "  Great drill!  ", now)
		require.NoError(t, err)

		assert.Equal(t, "Great drill!", c.Text())
		assert.Equal(t, now, c.Created())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := item.NewComment(10, 2, "   ", now)
		require.ErrorIs(t, err, item.ErrEmptyComment)
	})
}
