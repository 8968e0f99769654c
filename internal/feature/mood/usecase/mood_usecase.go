// Package usecase は気分記録の保存と履歴照会のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mood_backend/internal/feature/mood/domain/entity"
)

const (
	// MinHistoryDays と MaxHistoryDays は履歴照会の遡り日数の範囲（両端を含む）です。
	MinHistoryDays = 1
	MaxHistoryDays = 365
)

// MoodRepository は気分記録の永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MoodRepository interface {
	// Create persists a new entry.
	Create(ctx context.Context, mood *entity.Mood) error

	// FindSince returns the owner's entries with since <= CreatedAt <= until,
	// newest first. Ties are broken by descending ID.
	FindSince(ctx context.Context, email string, since, until time.Time) ([]entity.Mood, error)
}

// HistoryQuery selects an owner's recent entries.
type HistoryQuery struct {
	Email    string
	Days     int
	Triggers []string // OR filter; empty means no restriction
}

// moodUsecase implements the entry store and the history query engine.
type moodUsecase struct {
	moods MoodRepository
	now   func() time.Time
}

// NewMoodUsecase はmoodUsecaseの新しいインスタンスを生成します。
func NewMoodUsecase(moods MoodRepository) *moodUsecase {
	return &moodUsecase{
		moods: moods,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Save records a mood for email, stamped with the current time.
// Triggers are normalized to a set; nil becomes an empty set.
func (u *moodUsecase) Save(ctx context.Context, email, mood string, triggers []string) (*entity.Mood, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(mood) == "" {
		return nil, fmt.Errorf("%w: email and mood are required", ErrInvalidInput)
	}

	m := &entity.Mood{
		Email:     email,
		Mood:      mood,
		Triggers:  NormalizeTriggers(triggers),
		CreatedAt: u.now(),
	}
	if err := u.moods.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save mood: %w", err)
	}
	return m, nil
}

// History returns the owner's entries from the last q.Days days, newest first,
// restricted to entries sharing at least one trigger with q.Triggers, together
// with per-trigger counts over exactly those entries.
func (u *moodUsecase) History(ctx context.Context, q HistoryQuery) (*entity.History, error) {
	if q.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if q.Days < MinHistoryDays || q.Days > MaxHistoryDays {
		return nil, fmt.Errorf("%w: days must be between %d and %d", ErrInvalidInput, MinHistoryDays, MaxHistoryDays)
	}

	now := u.now()
	since := now.Add(-time.Duration(q.Days) * 24 * time.Hour)

	entries, err := u.moods.FindSince(ctx, q.Email, since, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	entries = FilterByTriggers(entries, NormalizeTriggers(q.Triggers))
	if entries == nil {
		entries = []entity.Mood{}
	}
	return &entity.History{
		Entries:       entries,
		TriggerCounts: CountTriggers(entries),
	}, nil
}
