package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rix-app/rix-backend/internal/projects/domain"
)

func proj(id string, age time.Duration) domain.Project {
	return domain.Project{
		ID:        id,
		OwnerUID:  "user-1",
		Name:      "Project " + id,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestStateApplyFetch(t *testing.T) {
	t.Run("starts in loading", func(t *testing.T) {
		st := NewState()
		assert.Equal(t, ViewLoading, st.View)
	})

	t.Run("non-empty fetch selects the newest project", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch([]domain.Project{proj("new", 0), proj("old", time.Hour)}, nil)

		assert.Equal(t, ViewProject, st.View)
		assert.Equal(t, "new", st.SelectedID)
		assert.False(t, st.WizardOpen)
	})

	t.Run("empty fetch opens the wizard", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch(nil, nil)

		assert.Equal(t, ViewWizard, st.View)
		assert.True(t, st.WizardOpen)
		assert.Empty(t, st.SelectedID)
	})

	t.Run("keeps an existing valid selection", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)
		require.NoError(t, st.Select("b"))

		st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)
		assert.Equal(t, "b", st.SelectedID)
	})

	t.Run("drops a selection that no longer exists", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)
		require.NoError(t, st.Select("b"))

		st.ApplyFetch([]domain.Project{proj("a", 0)}, nil)
		assert.Equal(t, "a", st.SelectedID)
		assert.Equal(t, ViewProject, st.View)
	})

	t.Run("open wizard survives a refresh without stealing selection", func(t *testing.T) {
		st := NewState()
		st.OpenWizard()

		st.ApplyFetch([]domain.Project{proj("a", 0)}, nil)
		assert.True(t, st.WizardOpen)
		assert.Empty(t, st.SelectedID)
		assert.Equal(t, ViewWizard, st.View)
	})

	t.Run("missing table failure wins over the message text", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch(nil, &pq.Error{Code: "42P01", Message: `relation "projects" does not exist`})

		assert.Equal(t, ViewTableMissing, st.View)
		assert.Empty(t, st.Projects)
		assert.Empty(t, st.ErrorMessage)
	})

	t.Run("access denied failure", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch(nil, errors.New(`new row violates row-level security policy`))

		assert.Equal(t, ViewAccessDenied, st.View)
	})

	t.Run("generic failure keeps the message for diagnosis", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch(nil, errors.New("connection refused"))

		assert.Equal(t, ViewError, st.View)
		assert.Equal(t, "connection refused", st.ErrorMessage)
	})

	t.Run("selection survives a transient error and a retry", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)
		require.NoError(t, st.Select("b"))

		st.ApplyFetch(nil, errors.New("connection refused"))
		assert.Equal(t, ViewError, st.View)
		assert.Equal(t, "b", st.SelectedID)

		st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)
		assert.Equal(t, ViewProject, st.View)
		assert.Equal(t, "b", st.SelectedID)
	})

	t.Run("retry drops a selection the refetch no longer contains", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)
		require.NoError(t, st.Select("b"))

		st.ApplyFetch(nil, errors.New("connection refused"))
		st.ApplyFetch([]domain.Project{proj("a", 0)}, nil)

		assert.Equal(t, "a", st.SelectedID)
		assert.Equal(t, ViewProject, st.View)
	})

	t.Run("successful fetch clears a previous error", func(t *testing.T) {
		st := NewState()
		st.ApplyFetch(nil, errors.New("connection refused"))
		st.ApplyFetch([]domain.Project{proj("a", 0)}, nil)

		assert.Equal(t, ViewProject, st.View)
		assert.Empty(t, st.ErrorMessage)
	})
}

func TestStateApplyCreate(t *testing.T) {
	st := NewState()
	st.ApplyFetch(nil, nil)
	require.True(t, st.WizardOpen)

	created := proj("fresh", 0)
	st.ApplyCreate(created)

	assert.Equal(t, ViewProject, st.View)
	assert.Equal(t, "fresh", st.SelectedID)
	assert.False(t, st.WizardOpen)
	require.Len(t, st.Projects, 1)
	assert.Equal(t, "fresh", st.Projects[0].ID)

	// A second create keeps newest-first order.
	st.ApplyCreate(proj("fresher", 0))
	assert.Equal(t, "fresher", st.Projects[0].ID)
	assert.Equal(t, "fresh", st.Projects[1].ID)
}

func TestStateApplyDelete(t *testing.T) {
	seed := func() *State {
		st := NewState()
		st.ApplyFetch([]domain.Project{proj("new", 0), proj("old", time.Hour)}, nil)
		return st
	}

	t.Run("deleting the selected project reselects the newest", func(t *testing.T) {
		st := seed()
		require.Equal(t, "new", st.SelectedID)

		st.ApplyDelete("new")
		assert.Equal(t, "old", st.SelectedID)
		assert.Equal(t, ViewProject, st.View)
	})

	t.Run("deleting an unselected project keeps the selection", func(t *testing.T) {
		st := seed()
		st.ApplyDelete("old")
		assert.Equal(t, "new", st.SelectedID)
		require.Len(t, st.Projects, 1)
	})

	t.Run("deleting the last project reopens the wizard", func(t *testing.T) {
		st := seed()
		st.ApplyDelete("new")
		st.ApplyDelete("old")

		assert.Empty(t, st.Projects)
		assert.Empty(t, st.SelectedID)
		assert.True(t, st.WizardOpen)
		assert.Equal(t, ViewWizard, st.View)
	})
}

func TestStateSelect(t *testing.T) {
	st := NewState()
	st.ApplyFetch([]domain.Project{proj("a", 0), proj("b", time.Hour)}, nil)

	t.Run("selects an existing project and closes the wizard", func(t *testing.T) {
		st.OpenWizard()
		require.NoError(t, st.Select("b"))

		assert.Equal(t, "b", st.SelectedID)
		assert.False(t, st.WizardOpen)
		assert.Equal(t, ViewProject, st.View)
	})

	t.Run("rejects an unknown project without mutating", func(t *testing.T) {
		before := *st
		err := st.Select("nope")
		require.ErrorIs(t, err, ErrUnknownProject)
		assert.Equal(t, before.SelectedID, st.SelectedID)
		assert.Equal(t, before.View, st.View)
	})
}

func TestStateWizard(t *testing.T) {
	st := NewState()
	st.ApplyFetch([]domain.Project{proj("a", 0)}, nil)

	st.OpenWizard()
	assert.True(t, st.WizardOpen)
	assert.Empty(t, st.SelectedID)
	assert.Equal(t, ViewWizard, st.View)

	st.CloseWizard()
	assert.False(t, st.WizardOpen)
	assert.Equal(t, "a", st.SelectedID)
	assert.Equal(t, ViewProject, st.View)
}
