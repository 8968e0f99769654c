// Package entity defines the content returned by the music and quote lookups.
package entity

// Quote is a single quotation.
type Quote struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// SongPage is one page of video search results. Its JSON shape follows the
// video provider's search response so clients can page with NextPageToken.
type SongPage struct {
	Items         []Song `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
	PrevPageToken string `json:"prevPageToken,omitempty"`
	TotalResults  int64  `json:"totalResults"`
}

// Song is a single search hit.
type Song struct {
	ID      SongID      `json:"id"`
	Snippet SongSnippet `json:"snippet"`
}

// SongID identifies the video on the provider.
type SongID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

// SongSnippet holds the display fields of a search hit.
type SongSnippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}
