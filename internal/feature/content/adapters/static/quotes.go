// Package static provides a quote source served from a curated in-process table.
package static

import (
	"context"
	"strings"

	"mood_backend/internal/feature/content/domain/entity"
	"mood_backend/internal/feature/content/usecase"
)

// curated is read-only after package initialization.
var curated = map[string][]entity.Quote{
	"happy": {
		{ID: "happy-1", Content: "Happiness depends upon ourselves.", Author: "Aristotle"},
		{ID: "happy-2", Content: "Be happy for this moment. This moment is your life.", Author: "Omar Khayyam"},
		{ID: "happy-3", Content: "Most folks are as happy as they make up their minds to be.", Author: "Abraham Lincoln"},
	},
	"sad": {
		{ID: "sad-1", Content: "Even the darkest night will end and the sun will rise.", Author: "Victor Hugo"},
		{ID: "sad-2", Content: "Tears are words that need to be written.", Author: "Paulo Coelho"},
		{ID: "sad-3", Content: "The word 'happy' would lose its meaning if it were not balanced by sadness.", Author: "Carl Jung"},
	},
	"angry": {
		{ID: "angry-1", Content: "For every minute you remain angry, you give up sixty seconds of peace of mind.", Author: "Ralph Waldo Emerson"},
		{ID: "angry-2", Content: "Speak when you are angry and you will make the best speech you will ever regret.", Author: "Ambrose Bierce"},
	},
	"anxious": {
		{ID: "anxious-1", Content: "Nothing in life is to be feared, it is only to be understood.", Author: "Marie Curie"},
		{ID: "anxious-2", Content: "Do not anticipate trouble, or worry about what may never happen.", Author: "Benjamin Franklin"},
	},
	"stressed": {
		{ID: "stressed-1", Content: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
		{ID: "stressed-2", Content: "Adopt the pace of nature: her secret is patience.", Author: "Ralph Waldo Emerson"},
	},
	"tired": {
		{ID: "tired-1", Content: "Rest is not idleness.", Author: "John Lubbock"},
		{ID: "tired-2", Content: "Our greatest glory is not in never falling, but in rising every time we fall.", Author: "Oliver Goldsmith"},
	},
	"calm": {
		{ID: "calm-1", Content: "Nothing can bring you peace but yourself.", Author: "Ralph Waldo Emerson"},
		{ID: "calm-2", Content: "Very little is needed to make a happy life; it is all within yourself.", Author: "Marcus Aurelius"},
	},
	"excited": {
		{ID: "excited-1", Content: "Nothing great was ever achieved without enthusiasm.", Author: "Ralph Waldo Emerson"},
		{ID: "excited-2", Content: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	},
	"lonely": {
		{ID: "lonely-1", Content: "A friend is one who knows you and loves you just the same.", Author: "Elbert Hubbard"},
		{ID: "lonely-2", Content: "Walking with a friend in the dark is better than walking alone in the light.", Author: "Helen Keller"},
	},
}

// QuoteSource は組み込みの名言テーブルからムードに合った名言を返すQuoteSource実装です。
// 未知のムードには空のリストを返します（エラーにはなりません）。
type QuoteSource struct{}

var _ usecase.QuoteSource = (*QuoteSource)(nil)

// NewQuoteSource returns the static quote source.
func NewQuoteSource() *QuoteSource {
	return &QuoteSource{}
}

// Quotes returns a copy of the curated quotes for mood.
func (s *QuoteSource) Quotes(_ context.Context, mood string) ([]entity.Quote, error) {
	quotes := curated[strings.ToLower(strings.TrimSpace(mood))]
	out := make([]entity.Quote, len(quotes))
	copy(out, quotes)
	return out, nil
}
