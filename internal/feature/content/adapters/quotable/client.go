package quotable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mood_backend/internal/feature/content/domain/entity"
	"mood_backend/internal/feature/content/usecase"
)

const providerName = "quotable"

// quoteDTO is a single quote as returned by /quotes/random.
type quoteDTO struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// QuoteSource は外部の名言APIからムードに合った名言を取得するQuoteSource実装です。
type QuoteSource struct {
	cfg    Config
	client *http.Client
}

// QuoteSourceがusecase.QuoteSourceを実装していることをコンパイル時に検証します。
var _ usecase.QuoteSource = (*QuoteSource)(nil)

// NewQuoteSource は指定された設定とHTTPクライアントでQuoteSourceの新しいインスタンスを生成します。
func NewQuoteSource(cfg Config, client *http.Client) *QuoteSource {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &QuoteSource{cfg: cfg, client: client}
}

// Quotes maps mood to its keyword and fetches random quotes tagged with it.
// An empty result is reported as usecase.ErrNoQuotes.
func (s *QuoteSource) Quotes(ctx context.Context, mood string) ([]entity.Quote, error) {
	q := url.Values{}
	q.Set("tags", usecase.KeywordFor(mood))
	q.Set("limit", strconv.Itoa(s.cfg.Limit))

	u := fmt.Sprintf("%s/quotes/random?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, &usecase.ProviderError{Provider: providerName, Status: http.StatusBadGateway, Payload: err.Error(), Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 該当タグが存在しない場合、プロバイダーは404を返す
	if res.StatusCode == http.StatusNotFound {
		return nil, usecase.ErrNoQuotes
	}
	if res.StatusCode >= 400 {
		return nil, &usecase.ProviderError{
			Provider: providerName,
			Status:   res.StatusCode,
			Payload:  readPayload(res.Body),
			Err:      fmt.Errorf("quotes http %d", res.StatusCode),
		}
	}

	var body []quoteDTO
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	if len(body) == 0 {
		return nil, usecase.ErrNoQuotes
	}

	quotes := make([]entity.Quote, 0, len(body))
	for _, d := range body {
		quotes = append(quotes, entity.Quote{ID: d.ID, Content: d.Content, Author: d.Author})
	}
	return quotes, nil
}

// readPayload returns the error body as JSON when possible, otherwise as text.
func readPayload(r io.Reader) any {
	b, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return nil
	}
	var v any
	if json.Unmarshal(b, &v) == nil {
		return v
	}
	return strings.TrimSpace(string(b))
}
