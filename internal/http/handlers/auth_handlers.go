package handlers

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/auth"
	"github.com/rogerio-castellano/dogfinder/internal/models"
)

// LoginHandler godoc
// @Summary Log in with a name and email
// @Description Sets the fetch-access-token cookie used by every other endpoint.
// @Tags auth
// @Accept json
// @Param credentials body LoginRequest true "name and email"
// @Success 200 {string} string "OK"
// @Failure 400 {array} ValidationError
// @Router /auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if errs := validateRequest(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	token, claims, err := tokens.Issue(models.User{Name: req.Name, Email: req.Email})
	if err != nil {
		logger.Error("could not issue token", zap.Error(err))
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	cookie := accessCookie(r, token, claims.ExpiresAt.Time)
	cookie.MaxAge = int(tokens.TTL().Seconds())
	http.SetCookie(w, cookie)
	logger.Info("user logged in", zap.String("email", req.Email))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// LogoutHandler godoc
// @Summary End the session
// @Description Revokes the current token and expires the cookie.
// @Tags auth
// @Success 200 {string} string "OK"
// @Failure 401 {string} string "Unauthorized"
// @Router /auth/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := tokens.Revoke(r.Context(), claims); err != nil {
		logger.Error("could not revoke token", zap.Error(err))
		http.Error(w, "could not log out", http.StatusInternalServerError)
		return
	}

	expired := accessCookie(r, "", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	logger.Info("user logged out", zap.String("email", claims.Email))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// accessCookie is cross site (SameSite=None) when served over TLS, and Lax
// for plain http on localhost where browsers refuse None without Secure.
func accessCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	secure := r.TLS != nil
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}
