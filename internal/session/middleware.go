package session

import (
	"log"
	"net/http"
)

const CookieName = "gradecalc_session"

// Middleware attaches the caller's session id to the request context,
// starting a new session when the cookie is missing, invalid or points at
// a session that has been swept. OPTIONS requests pass through without a
// session.
func Middleware(store *Store, tokens *Tokens, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			if c, err := r.Cookie(CookieName); err == nil {
				if id, err := tokens.Parse(c.Value); err == nil && store.Exists(id) {
					next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
					return
				}
			}

			id := store.Create()
			tok, err := tokens.Issue(id)
			if err != nil {
				log.Printf("issue session token: %v", err)
				http.Error(w, "issue session", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    tok,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   int(tokens.ttl.Seconds()),
			})
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}
