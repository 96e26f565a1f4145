package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"teknofix/templates"
)

// HandleLoginPage returns a handler that renders the login form.
func HandleLoginPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if GetAuthUser(e.Request) != nil {
			return e.Redirect(http.StatusFound, "/panel/teklifler")
		}
		component := templates.LoginPage(NavFor(e.Request, ""), templates.LoginData{})
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin returns a handler that authenticates a back-office user and
// sets the session cookie.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		email := strings.TrimSpace(e.Request.FormValue("email"))
		password := e.Request.FormValue("password")

		renderFailed := func() error {
			data := templates.LoginData{Email: email, Error: "E-posta veya şifre hatalı"}
			component := templates.LoginPage(NavFor(e.Request, ""), data)
			return component.Render(e.Request.Context(), e.Response)
		}

		user, err := app.FindAuthRecordByEmail("users", email)
		if err != nil {
			log.Printf("login: unknown user %s", email)
			return renderFailed()
		}
		if !user.ValidatePassword(password) {
			log.Printf("login: bad password for %s", email)
			return renderFailed()
		}

		token, err := user.NewAuthToken()
		if err != nil {
			log.Printf("login: could not issue token for %s: %v", email, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     AuthCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.Redirect(http.StatusFound, "/panel/teklifler")
	}
}

// HandleLogout returns a handler that clears the session cookie.
func HandleLogout(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   AuthCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.Redirect(http.StatusFound, "/")
	}
}
