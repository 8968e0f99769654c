// Package handler はmoodフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mood_backend/internal/api"
	"mood_backend/internal/feature/mood/domain/entity"
	"mood_backend/internal/feature/mood/transport/http/dto"
	"mood_backend/internal/feature/mood/usecase"
)

// MoodUsecase は気分記録のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MoodUsecase interface {
	Save(ctx context.Context, email, mood string, triggers []string) (*entity.Mood, error)
	History(ctx context.Context, q usecase.HistoryQuery) (*entity.History, error)
}

// MoodHandler は気分記録のHTTPリクエストを処理します。
type MoodHandler struct {
	uc MoodUsecase
}

// NewMoodHandler は指定されたusecaseでMoodHandlerの新しいインスタンスを生成します。
func NewMoodHandler(uc MoodUsecase) *MoodHandler {
	return &MoodHandler{uc: uc}
}

// Save handles POST /api/mood.
func (h *MoodHandler) Save(c *gin.Context) {
	var req dto.SaveMoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("mood validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and mood are required"})
		return
	}

	m, err := h.uc.Save(c.Request.Context(), req.Email, req.Mood, req.Triggers)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and mood are required"})
			return
		}
		slog.Error("failed to save mood", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.SaveMoodRes{Message: "Mood saved successfully", Mood: toMoodRes(*m)})
}

// History handles GET /api/mood/history?email=&days=&triggers=a,b
func (h *MoodHandler) History(c *gin.Context) {
	email := c.Query("email")
	daysStr := strings.TrimSpace(c.Query("days"))
	if email == "" || daysStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and days are required"})
		return
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Days must be an integer"})
		return
	}

	hist, err := h.uc.History(c.Request.Context(), usecase.HistoryQuery{
		Email:    email,
		Days:     days,
		Triggers: usecase.ParseTriggers(c.Query("triggers")),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Days must be between 1 and 365"})
			return
		}
		slog.Error("failed to load mood history", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
		return
	}

	out := make([]dto.MoodRes, 0, len(hist.Entries))
	for _, m := range hist.Entries {
		out = append(out, toMoodRes(m))
	}
	counts := hist.TriggerCounts
	if counts == nil {
		counts = map[string]int{}
	}
	c.JSON(http.StatusOK, dto.HistoryRes{MoodHistory: out, TriggerCounts: counts})
}

func toMoodRes(m entity.Mood) dto.MoodRes {
	triggers := m.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	return dto.MoodRes{Mood: m.Mood, Triggers: triggers, CreatedAt: m.CreatedAt.UTC()}
}
