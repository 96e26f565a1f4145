package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"teknofix/testhelpers"
)

func TestHandleLogin(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "usta@teknofix.com.tr", "cokGizli123")

	handler := HandleLogin(app)

	form := url.Values{
		"email":    {"usta@teknofix.com.tr"},
		"password": {"cokGizli123"},
	}
	req := newFormRequest("/giris", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/panel/teklifler" {
		t.Errorf("Location = %q, want /panel/teklifler", loc)
	}

	var authCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName {
			authCookie = c
		}
	}
	if authCookie == nil || authCookie.Value == "" {
		t.Fatal("auth cookie was not set")
	}
}

func TestHandleLoginWrongPassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "usta@teknofix.com.tr", "cokGizli123")

	handler := HandleLogin(app)

	form := url.Values{
		"email":    {"usta@teknofix.com.tr"},
		"password": {"yanlis"},
	}
	req := newFormRequest("/giris", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName && c.Value != "" {
			t.Error("auth cookie set on failed login")
		}
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"E-posta veya şifre hatalı",
		"usta@teknofix.com.tr", // email is kept in the form
	)
}

func TestHandleLoginUnknownUser(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLogin(app)

	form := url.Values{
		"email":    {"yok@teknofix.com.tr"},
		"password": {"birsey"},
	}
	req := newFormRequest("/giris", form)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "E-posta veya şifre hatalı")
}

func TestHandleLogout(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLogout(app)

	req := httptest.NewRequest(http.MethodGet, "/cikis", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("auth cookie was not cleared")
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	called := false
	handler := RequireAuth(func(e *core.RequestEvent) error {
		called = true
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if called {
		t.Error("protected handler ran for anonymous request")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/giris" {
		t.Errorf("Location = %q, want /giris", loc)
	}
}

func TestRequireAuthHTMXRedirect(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := RequireAuth(func(e *core.RequestEvent) error {
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/giris")
}

func TestAuthMiddlewareResolvesToken(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "usta@teknofix.com.tr", "cokGizli123")

	token, err := user.NewAuthToken()
	if err != nil {
		t.Fatalf("could not issue token: %v", err)
	}

	middleware := AuthMiddleware(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := middleware(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	resolved := GetAuthUser(e.Request)
	if resolved == nil {
		t.Fatal("middleware did not resolve the user")
	}
	if resolved.Id != user.Id {
		t.Errorf("resolved user %s, want %s", resolved.Id, user.Id)
	}
}

func TestAuthMiddlewareStaleToken(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	middleware := AuthMiddleware(app)

	req := httptest.NewRequest(http.MethodGet, "/panel/teklifler", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "stale-token"})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := middleware(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if GetAuthUser(e.Request) != nil {
		t.Error("stale token resolved to a user")
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("stale cookie was not cleared")
	}
}
