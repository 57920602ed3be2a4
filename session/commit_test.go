package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primviz/pipeline"
)

func computeText(t *testing.T, text string) *pipeline.Result {
	t.Helper()

	res, err := pipeline.Compute(context.Background(), text)
	require.NoError(t, err)

	return res
}

// A submission that finishes after a newer one must not overwrite it.
func TestCommit_LaterSubmissionWins(t *testing.T) {
	t.Parallel()

	s := New()
	older, newer := s.issued.Add(1), s.issued.Add(1)

	snap, err := s.commit(newer, "new", computeText(t, "2,0,3,3,0"), nil)
	require.NoError(t, err)
	assert.Same(t, snap, s.Current())

	stale, err := s.commit(older, "old", computeText(t, "2,0,9,9,0"), nil)
	require.NoError(t, err)
	require.NotNil(t, stale)
	assert.Equal(t, "old", stale.Name)
	assert.Equal(t, "new", s.Current().Name)

	// a stale failure does not clear the newer snapshot either
	_, err = s.commit(older, "old", nil, errors.New("boom"))
	require.Error(t, err)
	assert.Equal(t, "new", s.Current().Name)
}

func TestCommit_ClearDiscardsInFlight(t *testing.T) {
	t.Parallel()

	s := New()
	inFlight := s.issued.Add(1)
	s.Clear()

	_, err := s.commit(inFlight, "late", computeText(t, "2,0,3,3,0"), nil)
	require.NoError(t, err)
	assert.Nil(t, s.Current())

	// the next submission is applied normally
	_, err = s.Submit(context.Background(), "next", "2,0,4,4,0")
	require.NoError(t, err)
	assert.Equal(t, "next", s.Current().Name)
}
