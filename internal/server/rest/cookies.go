package rest

import (
	"net/http"
	"time"
)

// cookieLifetime is the browser-side session lifetime. The token itself
// carries no expiry; discarding the cookie ends the session.
const cookieLifetime = 90 * 24 * time.Hour

// setSessionCookies sets the HttpOnly token cookie plus a non-sensitive
// loggedIn flag the frontend can read.
func (s *Server) setSessionCookies(w http.ResponseWriter, token string) {
	expires := time.Now().Add(cookieLifetime)

	http.SetCookie(w, &http.Cookie{
		Name:    "loggedIn",
		Value:   "true",
		Path:    "/",
		Expires: expires,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.production,
	})
}

// clearSessionCookies expires both cookies immediately.
func (s *Server) clearSessionCookies(w http.ResponseWriter) {
	expires := time.Now()

	http.SetCookie(w, &http.Cookie{
		Name:    "loggedIn",
		Value:   "",
		Path:    "/",
		Expires: expires,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.production,
	})
}
