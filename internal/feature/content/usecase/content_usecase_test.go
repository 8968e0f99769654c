package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood_backend/internal/feature/content/domain/entity"
)

type mockMusicSource struct {
	SearchFunc  func(ctx context.Context, mood, pageToken string) (*entity.SongPage, error)
	SearchCalls int
}

func (m *mockMusicSource) Search(ctx context.Context, mood, pageToken string) (*entity.SongPage, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, mood, pageToken)
	}
	return &entity.SongPage{}, nil
}

type mockQuoteSource struct {
	QuotesFunc  func(ctx context.Context, mood string) ([]entity.Quote, error)
	QuotesCalls int
}

func (m *mockQuoteSource) Quotes(ctx context.Context, mood string) ([]entity.Quote, error) {
	m.QuotesCalls++
	if m.QuotesFunc != nil {
		return m.QuotesFunc(ctx, mood)
	}
	return nil, nil
}

func TestContentUsecase_Songs(t *testing.T) {
	ctx := context.Background()

	t.Run("passes trimmed mood and token", func(t *testing.T) {
		music := &mockMusicSource{
			SearchFunc: func(ctx context.Context, mood, pageToken string) (*entity.SongPage, error) {
				assert.Equal(t, "happy", mood)
				assert.Equal(t, "CAUQAA", pageToken)
				return &entity.SongPage{NextPageToken: "CAoQAA"}, nil
			},
		}

		page, err := NewContentUsecase(music, &mockQuoteSource{}).Songs(ctx, " happy ", "CAUQAA")

		require.NoError(t, err)
		assert.Equal(t, "CAoQAA", page.NextPageToken)
		assert.NotNil(t, page.Items)
	})

	t.Run("missing mood", func(t *testing.T) {
		music := &mockMusicSource{}

		_, err := NewContentUsecase(music, &mockQuoteSource{}).Songs(ctx, "  ", "")

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, music.SearchCalls)
	})

	t.Run("provider error is preserved", func(t *testing.T) {
		perr := &ProviderError{Provider: "youtube", Status: http.StatusForbidden, Payload: map[string]any{"code": 403}}
		music := &mockMusicSource{
			SearchFunc: func(ctx context.Context, mood, pageToken string) (*entity.SongPage, error) {
				return nil, perr
			},
		}

		_, err := NewContentUsecase(music, &mockQuoteSource{}).Songs(ctx, "sad", "")

		var got *ProviderError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, http.StatusForbidden, got.Status)
	})
}

func TestContentUsecase_Quotes(t *testing.T) {
	ctx := context.Background()

	t.Run("nil result becomes empty list", func(t *testing.T) {
		quotes, err := NewContentUsecase(&mockMusicSource{}, &mockQuoteSource{}).Quotes(ctx, "bored")

		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("missing mood", func(t *testing.T) {
		src := &mockQuoteSource{}

		_, err := NewContentUsecase(&mockMusicSource{}, src).Quotes(ctx, "")

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, src.QuotesCalls)
	})

	t.Run("no quotes", func(t *testing.T) {
		src := &mockQuoteSource{
			QuotesFunc: func(ctx context.Context, mood string) ([]entity.Quote, error) {
				return nil, ErrNoQuotes
			},
		}

		_, err := NewContentUsecase(&mockMusicSource{}, src).Quotes(ctx, "happy")

		assert.ErrorIs(t, err, ErrNoQuotes)
	})
}

func TestKeywordFor(t *testing.T) {
	tests := []struct {
		mood string
		want string
	}{
		{"happy", "happiness"},
		{"HAPPY", "happiness"},
		{" Sad ", "hope"},
		{"anxious", "courage"},
		{"bored", DefaultKeyword},
		{"", DefaultKeyword},
	}
	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordFor(tt.mood))
		})
	}
}

func TestProviderError(t *testing.T) {
	inner := errors.New("boom")
	err := &ProviderError{Provider: "quotable", Status: 502, Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "quotable")
	assert.Contains(t, err.Error(), "502")
}
