// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type NightHandler struct {
	coord *engine.Coordinator
	cfg   cliparse.Config
}

func NewNightHandler(coord *engine.Coordinator, cfg cliparse.Config) *NightHandler {
	return &NightHandler{coord: coord, cfg: cfg}
}

// parseDate accepts RFC3339 or a bare date; the date pickers on the
// frontend have sent both over time.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateNight handles POST /nights
func (h *NightHandler) CreateNight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNightRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date is required")
		return
	}
	scheduledAt, ok := parseDate(req.Date)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
		return
	}

	night, host, err := h.coord.CreateNight(req.Name, scheduledAt, req.MaxProposals, req.MaxVotesPerUser, req.Username)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	slog.Info("night created", "token", night.Token, "name", night.Name)

	resp := models.CreateNightResponse{
		Night: nightResponse(night, h.cfg.BaseURL),
	}
	if host != nil {
		u := userResponse(night, host)
		resp.User = &u
	}

	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// JoinNight handles POST /nights/:token/join
func (h *NightHandler) JoinNight(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	var req models.JoinNightRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	night, user, err := h.coord.JoinNight(token, req.Username)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	slog.Info("user joined", "token", token, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.JoinNightResponse{
		Night: nightResponse(night, h.cfg.BaseURL),
		User:  userResponse(night, user),
	})
}

// GetNight handles GET /nights/:token
// With ?username= the response includes that member's vote state; without
// it only public night data is returned.
func (h *NightHandler) GetNight(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	night, err := h.coord.GetNight(token)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	resp := models.CreateNightResponse{
		Night: nightResponse(night, h.cfg.BaseURL),
	}

	if username := r.URL.Query().Get("username"); username != "" {
		if member := night.Member(models.NormalizeUsername(username)); member != nil {
			u := userResponse(night, member)
			resp.User = &u
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetUsers handles GET /nights/:token/users
func (h *NightHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	night, err := h.coord.GetNight(token)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	users := make([]models.UserResponse, 0, len(night.Members))
	for i := range night.Members {
		users = append(users, userResponse(night, &night.Members[i]))
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsersResponse{Users: users})
}
