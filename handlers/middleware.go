package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/templates"
)

type contextKey string

// AuthUserKey holds the authenticated user record in the request context.
const AuthUserKey contextKey = "authUser"

// AuthCookieName is the session cookie carrying the PocketBase auth token.
const AuthCookieName = "tkf_auth"

// GetAuthUser extracts the logged-in user record from the request context.
func GetAuthUser(r *http.Request) *core.Record {
	if val, ok := r.Context().Value(AuthUserKey).(*core.Record); ok {
		return val
	}
	return nil
}

// NavFor builds the nav state for the current request.
func NavFor(r *http.Request, active string) templates.NavData {
	user := GetAuthUser(r)
	nav := templates.NavData{Active: active}
	if user != nil {
		nav.LoggedIn = true
		nav.UserName = user.GetString("name")
		if nav.UserName == "" {
			nav.UserName = user.GetString("email")
		}
	}
	return nav
}

// AuthMiddleware resolves the session cookie into a user record and stores it
// in the request context. It never blocks: public pages render for everyone,
// the gate for back-office routes is RequireAuth.
func AuthMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(AuthCookieName)
		if err == nil && cookie.Value != "" {
			record, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth)
			if err == nil {
				ctx := context.WithValue(e.Request.Context(), AuthUserKey, record)
				e.Request = e.Request.WithContext(ctx)
			} else {
				// Stale or forged token: drop the cookie
				http.SetCookie(e.Response, &http.Cookie{
					Name:   AuthCookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}
		return e.Next()
	}
}

// RequireAuth wraps a back-office handler, redirecting anonymous requests to
// the login page.
func RequireAuth(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if GetAuthUser(e.Request) == nil {
			if e.Request.Header.Get("HX-Request") == "true" {
				e.Response.Header().Set("HX-Redirect", "/giris")
				return e.String(http.StatusUnauthorized, "")
			}
			return e.Redirect(http.StatusFound, "/giris")
		}
		return next(e)
	}
}
