package usecase

import (
	"strings"

	"mood_backend/internal/feature/mood/domain/entity"
)

// NormalizeTriggers trims every tag, drops blanks and removes duplicates,
// keeping the first occurrence order. It never returns nil.
func NormalizeTriggers(triggers []string) []string {
	out := make([]string, 0, len(triggers))
	seen := make(map[string]struct{}, len(triggers))
	for _, t := range triggers {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ParseTriggers splits a comma-delimited filter such as "work, sleep".
func ParseTriggers(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return NormalizeTriggers(strings.Split(raw, ","))
}

// FilterByTriggers keeps the entries tagged with at least one filter trigger.
// An empty filter keeps everything. Order is preserved.
func FilterByTriggers(entries []entity.Mood, filter []string) []entity.Mood {
	if len(filter) == 0 {
		return entries
	}
	want := make(map[string]struct{}, len(filter))
	for _, f := range filter {
		want[f] = struct{}{}
	}

	out := make([]entity.Mood, 0, len(entries))
	for _, e := range entries {
		for _, t := range e.Triggers {
			if _, ok := want[t]; ok {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// CountTriggers counts, for each trigger, how many entries carry it.
// Only the given entries contribute, so a narrowed result narrows the counts too.
func CountTriggers(entries []entity.Mood) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		seen := make(map[string]struct{}, len(e.Triggers))
		for _, t := range e.Triggers {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			counts[t]++
		}
	}
	return counts
}
