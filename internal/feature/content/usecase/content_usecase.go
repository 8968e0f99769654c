// Package usecase はムードに応じた楽曲・名言の取得ロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"mood_backend/internal/feature/content/domain/entity"
)

// MusicSource は動画検索プロバイダーを抽象化します。
type MusicSource interface {
	// Search returns one page of "<mood> music" results.
	// An empty pageToken requests the first page.
	Search(ctx context.Context, mood, pageToken string) (*entity.SongPage, error)
}

// QuoteSource は名言の取得元を抽象化します。
// 外部APIを使う実装と、組み込みの静的テーブルを使う実装があります。
type QuoteSource interface {
	Quotes(ctx context.Context, mood string) ([]entity.Quote, error)
}

type contentUsecase struct {
	music  MusicSource
	quotes QuoteSource
}

// NewContentUsecase はcontentUsecaseの新しいインスタンスを生成します。
func NewContentUsecase(music MusicSource, quotes QuoteSource) *contentUsecase {
	return &contentUsecase{music: music, quotes: quotes}
}

// Songs looks up music for mood.
func (u *contentUsecase) Songs(ctx context.Context, mood, pageToken string) (*entity.SongPage, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, fmt.Errorf("%w: mood is required", ErrInvalidInput)
	}
	page, err := u.music.Search(ctx, mood, strings.TrimSpace(pageToken))
	if err != nil {
		return nil, fmt.Errorf("failed to search songs: %w", err)
	}
	if page.Items == nil {
		page.Items = []entity.Song{}
	}
	return page, nil
}

// Quotes looks up quotes for mood. The result is never nil.
func (u *contentUsecase) Quotes(ctx context.Context, mood string) ([]entity.Quote, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, fmt.Errorf("%w: mood is required", ErrInvalidInput)
	}
	quotes, err := u.quotes.Quotes(ctx, mood)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	if quotes == nil {
		quotes = []entity.Quote{}
	}
	return quotes, nil
}
