package goals

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCategories() []Category {
	return []Category{
		{Name: "피로/활력", Keywords: []string{"만성 피로가 있어요", "활력이 부족해요"}},
		{Name: "눈 건강", Keywords: []string{"눈이 자주 피로해요"}},
	}
}

func TestNewSession(t *testing.T) {
	t.Run("StartsAtFirstCategory", func(t *testing.T) {
		s, err := NewSession(twoCategories())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, "피로/활력", s.Current().Name)
		assert.False(t, s.AtEnd())
		assert.False(t, s.Completed())
	})

	t.Run("RequiresCategories", func(t *testing.T) {
		s, err := NewSession(nil)
		assert.Nil(t, s)
		assert.Equal(t, ErrNoCategories, err)
	})
}

func TestSessionToggle(t *testing.T) {
	s, err := NewSession(twoCategories())
	require.NoError(t, err)

	t.Run("SelectsAndDeselects", func(t *testing.T) {
		require.NoError(t, s.Toggle("만성 피로가 있어요"))
		assert.Equal(t, []string{"만성 피로가 있어요"}, s.Selected())

		require.NoError(t, s.Toggle("만성 피로가 있어요"))
		assert.Empty(t, s.Selected())
	})

	t.Run("RejectsForeignKeyword", func(t *testing.T) {
		// Keyword belongs to the second category, not the current one.
		assert.Equal(t, ErrUnknownKeyword, s.Toggle("눈이 자주 피로해요"))
	})

	t.Run("SelectedFollowsKeywordOrder", func(t *testing.T) {
		require.NoError(t, s.Toggle("활력이 부족해요"))
		require.NoError(t, s.Toggle("만성 피로가 있어요"))

		assert.Equal(t, []string{"만성 피로가 있어요", "활력이 부족해요"}, s.Selected())
	})
}

func TestSessionTransitions(t *testing.T) {
	s, err := NewSession(twoCategories())
	require.NoError(t, err)

	assert.Equal(t, ErrAtFirstCategory, s.Previous())

	require.NoError(t, s.Next())
	assert.Equal(t, "눈 건강", s.Current().Name)
	assert.True(t, s.AtEnd())
	assert.Equal(t, ErrAtLastCategory, s.Next())

	require.NoError(t, s.Previous())
	assert.Equal(t, "피로/활력", s.Current().Name)
}

func TestSelectionsSurviveTransitions(t *testing.T) {
	s, err := NewSession(twoCategories())
	require.NoError(t, err)

	require.NoError(t, s.Toggle("만성 피로가 있어요"))
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle("눈이 자주 피로해요"))
	require.NoError(t, s.Previous())

	assert.Equal(t, []string{"만성 피로가 있어요"}, s.Selected())

	require.NoError(t, s.Next())
	assert.Equal(t, []string{"눈이 자주 피로해요"}, s.Selected())
}

func TestSessionComplete(t *testing.T) {
	t.Run("OnlyAtLastCategory", func(t *testing.T) {
		s, err := NewSession(twoCategories())
		require.NoError(t, err)

		_, err = s.Complete()
		assert.Equal(t, ErrNotAtEnd, err)
	})

	t.Run("ReturnsAllSelections", func(t *testing.T) {
		s, err := NewSession(twoCategories())
		require.NoError(t, err)

		require.NoError(t, s.Toggle("활력이 부족해요"))
		require.NoError(t, s.Next())
		require.NoError(t, s.Toggle("눈이 자주 피로해요"))

		result, err := s.Complete()
		require.NoError(t, err)
		assert.True(t, s.Completed())
		assert.Equal(t, map[string][]string{
			"피로/활력": {"활력이 부족해요"},
			"눈 건강":  {"눈이 자주 피로해요"},
		}, result)
	})

	t.Run("EmptySelectionsAllowed", func(t *testing.T) {
		s, err := NewSession(twoCategories())
		require.NoError(t, err)
		require.NoError(t, s.Next())

		result, err := s.Complete()
		require.NoError(t, err)
		assert.Empty(t, result["피로/활력"])
		assert.Empty(t, result["눈 건강"])
	})
}

func TestStore(t *testing.T) {
	st := NewStore()

	session, err := st.Start(DefaultCategories())
	require.NoError(t, err)

	found, err := st.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, found)

	st.Delete(session.ID())
	_, err = st.Get(session.ID())
	assert.Equal(t, ErrSessionNotFound, err)
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()

	require.Len(t, cats, 5)
	assert.Equal(t, "피로/활력", cats[0].Name)
	assert.Equal(t, "면역력", cats[4].Name)
	for _, c := range cats {
		assert.NotEmpty(t, c.Keywords, "category %s", c.Name)
	}
}
