package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood_backend/internal/feature/content/usecase"
)

func TestQuoteSource_Quotes(t *testing.T) {
	src := NewQuoteSource()
	ctx := context.Background()

	t.Run("known mood is case-insensitive", func(t *testing.T) {
		lower, err := src.Quotes(ctx, "happy")
		require.NoError(t, err)
		upper, err := src.Quotes(ctx, " HAPPY ")
		require.NoError(t, err)

		assert.NotEmpty(t, lower)
		assert.Equal(t, lower, upper)
	})

	t.Run("unknown mood returns empty list", func(t *testing.T) {
		quotes, err := src.Quotes(ctx, "bored")

		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("result is a copy", func(t *testing.T) {
		quotes, err := src.Quotes(ctx, "sad")
		require.NoError(t, err)
		quotes[0].Content = "changed"

		again, err := src.Quotes(ctx, "sad")
		require.NoError(t, err)
		assert.NotEqual(t, "changed", again[0].Content)
	})
}

// TestQuoteSource_KeywordMoodsCovered は名言キーワード表にある全ムードに静的な名言があることを検証します。
func TestQuoteSource_KeywordMoodsCovered(t *testing.T) {
	moods := []string{"happy", "sad", "angry", "anxious", "stressed", "tired", "calm", "excited", "lonely"}
	for _, mood := range moods {
		t.Run(mood, func(t *testing.T) {
			assert.NotEqual(t, usecase.DefaultKeyword, usecase.KeywordFor(mood), "mood missing from keyword table")

			quotes, err := NewQuoteSource().Quotes(context.Background(), mood)
			require.NoError(t, err)
			assert.NotEmpty(t, quotes)
		})
	}
	assert.Len(t, curated, len(moods))
}

func TestCuratedTable(t *testing.T) {
	seen := map[string]bool{}
	for mood, quotes := range curated {
		assert.NotEmpty(t, quotes, mood)
		for _, q := range quotes {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Content)
			assert.NotEmpty(t, q.Author)
			assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
			seen[q.ID] = true
		}
	}
}
