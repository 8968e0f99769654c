// Package handler はcontentフィーチャー（楽曲・名言）のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mood_backend/internal/api"
	"mood_backend/internal/feature/content/domain/entity"
	"mood_backend/internal/feature/content/usecase"
)

// ContentUsecase は楽曲・名言取得のユースケースインターフェースを定義します。
type ContentUsecase interface {
	Songs(ctx context.Context, mood, pageToken string) (*entity.SongPage, error)
	Quotes(ctx context.Context, mood string) ([]entity.Quote, error)
}

// ContentHandler は楽曲・名言のHTTPリクエストを処理します。
type ContentHandler struct {
	uc ContentUsecase
}

// NewContentHandler は指定されたusecaseでContentHandlerの新しいインスタンスを生成します。
func NewContentHandler(uc ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Songs handles GET /api/songs?mood=&pageToken=
func (h *ContentHandler) Songs(c *gin.Context) {
	mood := c.Query("mood")
	page, err := h.uc.Songs(c.Request.Context(), mood, c.Query("pageToken"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Mood is required"})
			return
		}
		slog.Error("failed to fetch songs", "error", err, "mood", mood)
		resp := api.ErrorResponse{Message: "Failed to fetch songs"}
		var perr *usecase.ProviderError
		if errors.As(err, &perr) {
			resp.Error = perr.Payload
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Quotes handles GET /api/quotes?mood=
func (h *ContentHandler) Quotes(c *gin.Context) {
	mood := c.Query("mood")
	quotes, err := h.uc.Quotes(c.Request.Context(), mood)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Mood is required"})
		case errors.Is(err, usecase.ErrNoQuotes):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "No quotes found"})
		default:
			slog.Error("failed to fetch quotes", "error", err, "mood", mood)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch quotes"})
		}
		return
	}
	c.JSON(http.StatusOK, quotes)
}
