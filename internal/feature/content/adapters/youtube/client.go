package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"mood_backend/internal/feature/content/domain/entity"
	"mood_backend/internal/feature/content/usecase"
)

const providerName = "youtube"

// MusicSource はYouTube検索APIで「<mood> music」の動画を取得するMusicSource実装です。
type MusicSource struct {
	cfg Config
	svc *yt.Service
}

// MusicSourceがusecase.MusicSourceを実装していることをコンパイル時に検証します。
var _ usecase.MusicSource = (*MusicSource)(nil)

// NewMusicSource creates the YouTube service on top of client.
// The API key is sent per call because option.WithAPIKey is ignored when a
// custom HTTP client is supplied.
func NewMusicSource(ctx context.Context, cfg Config, client *http.Client) (*MusicSource, error) {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if cfg.BaseURL != "" {
		// generated clients resolve paths relative to the endpoint, so it must end in "/"
		opts = append(opts, option.WithEndpoint(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &MusicSource{cfg: cfg, svc: svc}, nil
}

// Search runs search.list for "<mood> music" restricted to videos.
func (s *MusicSource) Search(ctx context.Context, mood, pageToken string) (*entity.SongPage, error) {
	call := s.svc.Search.List([]string{"snippet"}).
		Q(mood + " music").
		Type("video").
		MaxResults(s.cfg.MaxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	res, err := call.Do(googleapi.QueryParameter("key", s.cfg.APIKey))
	if err != nil {
		return nil, toProviderError(err)
	}
	return toSongPage(res), nil
}

// toProviderError keeps the provider's JSON error body so the handler can relay it.
func toProviderError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return &usecase.ProviderError{Provider: providerName, Status: http.StatusBadGateway, Payload: err.Error(), Err: err}
	}
	var payload any = gerr.Message
	var body map[string]any
	if json.Unmarshal([]byte(gerr.Body), &body) == nil {
		if inner, ok := body["error"]; ok {
			payload = inner
		} else {
			payload = body
		}
	}
	return &usecase.ProviderError{Provider: providerName, Status: gerr.Code, Payload: payload, Err: err}
}

func toSongPage(res *yt.SearchListResponse) *entity.SongPage {
	page := &entity.SongPage{
		Items:         make([]entity.Song, 0, len(res.Items)),
		NextPageToken: res.NextPageToken,
		PrevPageToken: res.PrevPageToken,
	}
	if res.PageInfo != nil {
		page.TotalResults = res.PageInfo.TotalResults
	}
	for _, it := range res.Items {
		if it == nil {
			continue
		}
		var song entity.Song
		if it.Id != nil {
			song.ID = entity.SongID{Kind: it.Id.Kind, VideoID: it.Id.VideoId}
		}
		if sn := it.Snippet; sn != nil {
			song.Snippet = entity.SongSnippet{
				Title:        sn.Title,
				Description:  sn.Description,
				ChannelTitle: sn.ChannelTitle,
				PublishedAt:  sn.PublishedAt,
				ThumbnailURL: thumbnailURL(sn.Thumbnails),
			}
		}
		page.Items = append(page.Items, song)
	}
	return page
}

// thumbnailURL picks the largest available thumbnail.
func thumbnailURL(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*yt.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
