// Package adapters はmoodフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mood_backend/internal/feature/mood/domain/entity"
	"mood_backend/internal/feature/mood/usecase"
)

// MoodModel is the gorm model for the moods table.
// Triggers is a JSON array column (JSONB on PostgreSQL, JSON on SQLite).
type MoodModel struct {
	ID        uint                        `gorm:"primaryKey"`
	Email     string                      `gorm:"size:255;not null;index:idx_moods_email_created,priority:1"`
	Mood      string                      `gorm:"size:64;not null"`
	Triggers  datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt time.Time                   `gorm:"not null;index:idx_moods_email_created,priority:2"`
}

// TableName returns the table name for GORM.
func (MoodModel) TableName() string {
	return "moods"
}

func toModel(e *entity.Mood) MoodModel {
	triggers := e.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	return MoodModel{
		Email:     e.Email,
		Mood:      e.Mood,
		Triggers:  datatypes.JSONSlice[string](triggers),
		CreatedAt: e.CreatedAt,
	}
}

func (m MoodModel) toEntity() entity.Mood {
	triggers := []string(m.Triggers)
	if triggers == nil {
		triggers = []string{}
	}
	return entity.Mood{
		ID:        m.ID,
		Email:     m.Email,
		Mood:      m.Mood,
		Triggers:  triggers,
		CreatedAt: m.CreatedAt,
	}
}

// moodPostgres はMoodRepositoryインターフェースのgorm実装です。
type moodPostgres struct {
	db *gorm.DB
}

var _ usecase.MoodRepository = (*moodPostgres)(nil)

// NewMoodRepository は指定されたDB接続でmoodPostgresの新しいインスタンスを生成します。
func NewMoodRepository(db *gorm.DB) *moodPostgres {
	return &moodPostgres{db: db}
}

// Create inserts the entry and writes back its ID and CreatedAt.
func (r *moodPostgres) Create(ctx context.Context, e *entity.Mood) error {
	m := toModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	e.CreatedAt = m.CreatedAt
	return nil
}

// FindSince returns the owner's entries in [since, until], newest first.
func (r *moodPostgres) FindSince(ctx context.Context, email string, since, until time.Time) ([]entity.Mood, error) {
	var rows []MoodModel
	if err := r.db.WithContext(ctx).
		Where("email = ? AND created_at >= ? AND created_at <= ?", email, since, until).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Mood, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
