package usecase

import "strings"

// DefaultKeyword is used for moods missing from the keyword table.
const DefaultKeyword = "inspirational"

// moodKeywords maps a mood label to the topic searched on the quotes provider.
var moodKeywords = map[string]string{
	"happy":    "happiness",
	"sad":      "hope",
	"angry":    "wisdom",
	"anxious":  "courage",
	"stressed": "motivational",
	"tired":    "life",
	"calm":     "wisdom",
	"excited":  "success",
	"lonely":   "friendship",
}

// KeywordFor はムードに対応する名言検索キーワードを返します。大文字小文字は区別しません。
func KeywordFor(mood string) string {
	if kw, ok := moodKeywords[strings.ToLower(strings.TrimSpace(mood))]; ok {
		return kw
	}
	return DefaultKeyword
}
