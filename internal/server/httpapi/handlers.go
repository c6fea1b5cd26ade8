package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/api"
	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

type bindingKey struct{}

type healthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "OK",
		Uptime: time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.sessions.Register(r.Context(), req)
	s.metrics.ObserveAuth("register", err)
	if err != nil {
		s.fail(w, r, "register", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.sessions.Login(r.Context(), req)
	s.metrics.ObserveAuth("login", err)
	if err != nil {
		s.fail(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req api.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.sessions.Refresh(r.Context(), req.RefreshToken)
	s.metrics.ObserveAuth("refresh", err)
	if err != nil {
		s.fail(w, r, "refresh", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogExercise(w http.ResponseWriter, r *http.Request) {
	var req api.ExerciseInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := s.records.LogExercise(r.Context(), bindingFrom(r.Context()), req)
	if err != nil {
		s.fail(w, r, "log_exercise", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.Exercise(*e))
}

func (s *Server) handleLogNutrition(w http.ResponseWriter, r *http.Request) {
	var req api.NutritionInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := s.records.LogNutrition(r.Context(), bindingFrom(r.Context()), req)
	if err != nil {
		s.fail(w, r, "log_nutrition", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.Nutrition(*n))
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		binding, err := s.authorizer.Authorize(r.Context(), bearerToken(r.Header.Get(common.AuthorizationHeader)))
		s.metrics.ObserveAuth("authorize", err)
		if err != nil {
			s.fail(w, r, "authorize", err)
			return
		}
		ctx := context.WithValue(r.Context(), bindingKey{}, binding)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "operation", op, "error", err)
	} else {
		s.logger.Debug(r.Context(), "request rejected", "operation", op, "error", err)
	}
	writeError(w, status, message)
}

func bindingFrom(ctx context.Context) *models.TokenBinding {
	b, _ := ctx.Value(bindingKey{}).(*models.TokenBinding)
	return b
}

// bearerToken strips the "Bearer " prefix. Anything else yields "".
func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
