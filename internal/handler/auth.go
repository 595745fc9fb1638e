package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bkaddour/authd/internal/domain"
	"github.com/bkaddour/authd/internal/service"
	"github.com/bkaddour/authd/internal/validate"
)

const authCookieName = "auth_token"

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
	exposeErrors bool
}

// NewAuthHandler creates a new AuthHandler. When exposeErrors is set
// (development only), 500 bodies include the underlying error text.
func NewAuthHandler(auth *service.AuthService, cookieSecure, exposeErrors bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure, exposeErrors: exposeErrors}
}

// HandleRegister processes a JSON registration request.
// POST /auth/register
// Request:  {"name":"...","email":"...","password":"..."}
// Response: 201 {"message":"...","savedUser":{...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid input",
				"details": verr.Violations,
			})
			return
		}
		if errors.Is(err, domain.ErrDuplicateUser) {
			writeError(w, http.StatusBadRequest, "An account with those details already exists.")
			return
		}
		slog.ErrorContext(r.Context(), "register user", "error", err)
		h.serverError(w, "Error creating user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "User created successfully",
		"savedUser": toUserDTO(user),
	})
}

// HandleLogin processes a JSON login request. On success it sets the
// auth_token cookie and returns the token alongside the user identity.
// POST /auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"message":"...","user":{"id":...,"email":"..."},"token":"...","expiresIn":...}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	signed, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid input",
				"details": verr.Violations,
			})
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			// Same status and body for unknown email and wrong password.
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.ErrorContext(r.Context(), "login user", "error", err)
		h.serverError(w, "Something went wrong", err)
		return
	}

	// Verify the token we just issued. A failure here means the signer
	// and verifier disagree, which is a server fault, not the client's.
	if _, err := h.auth.VerifyToken(signed); err != nil {
		slog.ErrorContext(r.Context(), "verify freshly issued token", "error", err)
		h.serverError(w, "Something went wrong", err)
		return
	}

	ttl := h.auth.TokenTTL()
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookieSecure,
		MaxAge:   int(ttl.Seconds()), // matches the token expiry
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
		},
		"token":     signed,
		"expiresIn": int(ttl.Seconds()),
	})
}

// HandleLogout clears the auth cookie.
// POST /auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookieSecure,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the currently authenticated user.
// GET /auth/me
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// serverError writes a 500 with a generic message. Outside production
// the underlying error text is included for debugging.
func (h *AuthHandler) serverError(w http.ResponseWriter, message string, err error) {
	body := map[string]any{"message": message}
	if h.exposeErrors {
		body["error"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
