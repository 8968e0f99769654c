package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mood_backend/internal/feature/mood/domain/entity"
)

func TestParseTriggers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "work", []string{"work"}},
		{"trims and drops blanks", " work, ,sleep ,", []string{"work", "sleep"}},
		{"dedupes", "work,work, work", []string{"work"}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTriggers(tt.raw))
		})
	}
}

func TestNormalizeTriggers_NilBecomesEmpty(t *testing.T) {
	t.Parallel()

	got := NormalizeTriggers(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByTriggers(t *testing.T) {
	t.Parallel()

	entries := []entity.Mood{
		{ID: 3, Mood: "sad", Triggers: []string{"work"}},
		{ID: 2, Mood: "calm", Triggers: []string{}},
		{ID: 1, Mood: "happy", Triggers: []string{"work", "sleep"}},
	}

	t.Run("empty filter keeps everything", func(t *testing.T) {
		assert.Equal(t, entries, FilterByTriggers(entries, nil))
	})

	t.Run("single trigger", func(t *testing.T) {
		got := FilterByTriggers(entries, []string{"sleep"})
		assert.Equal(t, []entity.Mood{entries[2]}, got)
	})

	t.Run("filter is OR across triggers and keeps order", func(t *testing.T) {
		got := FilterByTriggers(entries, []string{"sleep", "work"})
		assert.Equal(t, []entity.Mood{entries[0], entries[2]}, got)
	})

	t.Run("no overlap", func(t *testing.T) {
		got := FilterByTriggers(entries, []string{"family"})
		assert.Empty(t, got)
	})
}

func TestCountTriggers(t *testing.T) {
	t.Parallel()

	entries := []entity.Mood{
		{Triggers: []string{"work"}},
		{Triggers: []string{"work", "sleep"}},
		{Triggers: []string{"sleep", "sleep"}},
		{Triggers: nil},
	}

	got := CountTriggers(entries)

	assert.Equal(t, map[string]int{"work": 2, "sleep": 2}, got)
	assert.Empty(t, CountTriggers(nil))
}
