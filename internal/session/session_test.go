package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mind-engage/gradecalc/internal/grading"
	"github.com/mind-engage/gradecalc/internal/session"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func TestStore_UpdateAndExpiry(t *testing.T) {
	c := &clock{t: time.Unix(1_700_000_000, 0)}
	st := session.NewStore(time.Minute, c.Now)
	id := st.Create()

	err := st.Update(id, func(s *grading.Session) error {
		s.Subjects.Add()
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	var n int
	_ = st.Update(id, func(s *grading.Session) error {
		n = s.Subjects.Len()
		return nil
	})
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}

	c.t = c.t.Add(30 * time.Second)
	if !st.Exists(id) {
		t.Fatal("session expired too early")
	}
	c.t = c.t.Add(2 * time.Minute)
	if st.Exists(id) {
		t.Fatal("session should have expired")
	}
	if err := st.Update(id, func(*grading.Session) error { return nil }); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := st.Sweep(); got != 1 {
		t.Fatalf("expected 1 swept, got %d", got)
	}
	if st.Len() != 0 {
		t.Fatalf("expected empty store, got %d", st.Len())
	}
}

func TestStore_UpdatePropagatesError(t *testing.T) {
	st := session.NewStore(0, nil)
	id := st.Create()
	want := errors.New("boom")
	if err := st.Update(id, func(*grading.Session) error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestTokens_RoundTripAndTamper(t *testing.T) {
	tk := session.NewTokens("secret-a", time.Hour)
	tok, err := tk.Issue("abc")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := tk.Parse(tok)
	if err != nil || id != "abc" {
		t.Fatalf("parse = %q, %v", id, err)
	}
	if _, err := session.NewTokens("secret-b", time.Hour).Parse(tok); err == nil {
		t.Fatal("expected signature failure with another secret")
	}
	if _, err := tk.Parse(tok + "x"); err == nil {
		t.Fatal("expected failure on tampered token")
	}
	if _, err := tk.Parse("not-a-jwt"); err == nil {
		t.Fatal("expected failure on garbage")
	}
}

func TestTokens_Expired(t *testing.T) {
	tk := session.NewTokens("secret", -time.Minute)
	tok, err := tk.Issue("abc")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tk.Parse(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestMiddleware_ReusesAndReplacesSessions(t *testing.T) {
	st := session.NewStore(time.Hour, nil)
	tk := session.NewTokens("secret", time.Hour)

	var seen string
	h := session.Middleware(st, tk, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = session.IDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName || !cookies[0].HttpOnly {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	first := seen
	if first == "" || !st.Exists(first) {
		t.Fatalf("session %q not created", first)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != first {
		t.Fatalf("expected session %q reused, got %q", first, seen)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("no new cookie expected for a valid session")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookies[0].Value + "tampered"})
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen == first || seen == "" {
		t.Fatalf("tampered cookie should start a new session, got %q", seen)
	}
	if st.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", st.Len())
	}
}

func TestMiddleware_OptionsSkipsSession(t *testing.T) {
	st := session.NewStore(time.Hour, nil)
	called := false
	h := session.Middleware(st, session.NewTokens("secret", time.Hour), false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if id := session.IDFromContext(r.Context()); id != "" {
			t.Errorf("unexpected session id %q", id)
		}
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/", nil))
	if !called {
		t.Fatal("next handler not called")
	}
	if len(rr.Result().Cookies()) != 0 || st.Len() != 0 {
		t.Fatal("OPTIONS must not create a session")
	}
}
