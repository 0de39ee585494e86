package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"github.com/heartmarshall/bankpanel-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AccountHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	AssignRole(ctx context.Context, input auth.AssignRoleInput) (string, error)
}

// AccountHandler serves /api/account endpoints.
type AccountHandler struct {
	svc authService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc authService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type assignRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	UserName string   `json:"userName"`
	Roles    []string `json:"roles"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register handles POST /api/account/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Login handles POST /api/account/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toAuthResponse(result))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid login attempt.")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "User account is locked out.")
	default:
		handleError(h.log, w, r, err, "")
	}
}

// AssignRole handles POST /api/account/assign-role (Admin only).
func (h *AccountHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	msg, err := h.svc.AssignRole(r.Context(), auth.AssignRoleInput{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		handleError(h.log, w, r, err, fmt.Sprintf("User with email %s not found.", req.Email))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	roles := result.User.Roles
	if roles == nil {
		roles = []string{}
	}
	return authResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User: userResponse{
			ID:       result.User.ID.String(),
			Email:    result.User.Email,
			UserName: result.User.UserName,
			Roles:    roles,
		},
	}
}
