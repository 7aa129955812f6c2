package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users    *UserService
	sessions *SessionService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users *UserService, sessions *SessionService) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		validate: validator.New(),
	}
}

// Register handles POST /register. On success it stores the user and issues
// a session cookie.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "Invalid request body"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: registerValidationMessage(err)})
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeJSON(w, HTTPStatus(err), authResponse{Message: userFacingMessage(err, "Registration failed")})
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, authResponse{Message: "Registration failed"})
		return
	}

	h.sessions.SetCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{Success: true, Message: "Registration successful!"})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "Invalid request body"})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "Email and password are required"})
		return
	}

	user, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJSON(w, HTTPStatus(err), authResponse{Message: userFacingMessage(err, "Login failed")})
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, authResponse{Message: "Login failed"})
		return
	}

	h.sessions.SetCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{Success: true, Message: "Login successful!"})
}

// Logout handles GET /logout: clears the session and redirects home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// registerValidationMessage maps validator failures onto the user-facing
// registration messages.
func registerValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		if ve.Field() == "Password" && ve.Tag() == "min" {
			return "Password must be at least 6 characters"
		}
		if ve.Field() == "Email" && ve.Tag() == "email" {
			return "Invalid email address"
		}
	}
	return "All fields are required"
}

// userFacingMessage returns the error's own message for the typed errors the
// client is expected to see, and the generic fallback otherwise.
func userFacingMessage(err error, fallback string) string {
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		return err.Error()
	default:
		return fallback
	}
}
