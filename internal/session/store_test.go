package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge-sg/carebot-go/internal/dialog"
	apperrors "github.com/carebridge-sg/carebot-go/internal/errors"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
)

func TestStoreCRUD(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)
	state := dialog.State{Lang: i18n.LangEN, Step: dialog.StepChooseDomain, PageSize: 3}

	id := s.Create(state)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	next := state
	next.Step = dialog.StepChooseFocus
	require.NoError(t, s.Put(id, next))
	got, err = s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, dialog.StepChooseFocus, got.Step)

	s.Delete(id)
	_, err = s.Get(id)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestStore_PutUnknownSession(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)
	err := s.Put("nope", dialog.State{})
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)
	a := s.Create(dialog.State{Lang: i18n.LangEN, LastQuery: "chas"})
	b := s.Create(dialog.State{Lang: i18n.LangZH, LastQuery: "租屋"})

	stateA, err := s.Get(a)
	require.NoError(t, err)
	stateB, err := s.Get(b)
	require.NoError(t, err)

	assert.Equal(t, "chas", stateA.LastQuery)
	assert.Equal(t, "租屋", stateB.LastQuery)
}

func TestStore_Sweep(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	stale := s.Create(dialog.State{})
	current = current.Add(2 * time.Minute)
	fresh := s.Create(dialog.State{})

	removed := s.Sweep()
	assert.Equal(t, 1, removed)

	_, err := s.Get(stale)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = s.Get(fresh)
	assert.NoError(t, err)
}

func TestStore_PutRefreshesIdleTimer(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	id := s.Create(dialog.State{})
	current = current.Add(45 * time.Second)
	require.NoError(t, s.Put(id, dialog.State{Step: dialog.StepChooseFocus}))
	current = current.Add(45 * time.Second)

	// 90s since create but only 45s since last Put: survives.
	assert.Equal(t, 0, s.Sweep())
	_, err := s.Get(id)
	assert.NoError(t, err)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.Create(dialog.State{})
			_, _ = s.Get(id)
			_ = s.Put(id, dialog.State{Step: dialog.StepRefineAndShow})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, s.Len())
}
