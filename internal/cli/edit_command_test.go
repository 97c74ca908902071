package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloclify/internal/domain"
	"cloclify/internal/errors"
)

func TestEditCommand(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	seed := func(mock *mockAPI) {
		mock.entries = []domain.TimeEntry{{
			ID:          "e1",
			Description: "writing docs",
			Start:       start,
			End:         &end,
			ProjectID:   "p1",
			TagIDs:      []string{"t1"},
		}}
	}

	t.Run("changing one field keeps the rest", func(t *testing.T) {
		app, mock, buf := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{
			ID:             "e1",
			Description:    "editing docs",
			SetDescription: true,
		})
		require.NoError(t, err)

		require.Len(t, mock.updated, 1)
		update := mock.updated[0]
		assert.Equal(t, "editing docs", update.Description)
		assert.Equal(t, start, update.Start)
		require.NotNil(t, update.End)
		assert.Equal(t, end, *update.End)
		assert.Equal(t, "p1", update.ProjectID)
		assert.Equal(t, []string{"t1"}, update.TagIDs)
		assert.Contains(t, buf.String(), "Updated time entry:")
	})

	t.Run("new end time stays on the entry's own day", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{
			ID:    "e1",
			To:    "11:00",
			SetTo: true,
		})
		require.NoError(t, err)

		require.Len(t, mock.updated, 1)
		require.NotNil(t, mock.updated[0].End)
		assert.Equal(t, time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC), *mock.updated[0].End)
	})

	t.Run("moving to another date keeps the clock times", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{
			ID:      "e1",
			Date:    "2024-01-12",
			SetDate: true,
		})
		require.NoError(t, err)

		require.Len(t, mock.updated, 1)
		update := mock.updated[0]
		assert.Equal(t, time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), update.Start)
		require.NotNil(t, update.End)
		assert.Equal(t, time.Date(2024, 1, 12, 10, 30, 0, 0, time.UTC), *update.End)
	})

	t.Run("project change resolves the name", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{
			ID:         "e1",
			Project:    "cloclify",
			SetProject: true,
		})
		require.NoError(t, err)
		require.Len(t, mock.updated, 1)
		assert.Equal(t, "p2", mock.updated[0].ProjectID)
	})

	t.Run("no fields is a usage error before any network activity", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{ID: "e1"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUsage))
		assert.Empty(t, mock.calls)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{
			ID:    "e1",
			To:    "08:00",
			SetTo: true,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUsage))
		assert.Zero(t, mock.callCount("UpdateTimeEntry"))
	})

	t.Run("unknown id surfaces the service error", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		seed(mock)

		err := NewEditCommand(app).Execute(context.Background(), EditOptions{
			ID:             "missing",
			Description:    "x",
			SetDescription: true,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAPI))
		status, ok := errors.StatusCode(err)
		require.True(t, ok)
		assert.Equal(t, 404, status)
	})
}
