package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mind-engage/gradecalc/internal/grading"
	"github.com/mind-engage/gradecalc/internal/session"
)

type resultView struct {
	Average string         `json:"average"` // two decimals, e.g. "1.65"
	Rating  grading.Rating `json:"rating"`
}

type sessionView struct {
	Subjects  []grading.Subject `json:"subjects"`
	CanRemove bool              `json:"can_remove"`
	Result    *resultView       `json:"result"`
}

func viewOf(s *grading.Session) sessionView {
	v := sessionView{
		Subjects:  s.Subjects.Entries(),
		CanRemove: s.Subjects.CanRemove(),
	}
	if s.Result != nil {
		v.Result = toResultView(*s.Result)
	}
	return v
}

func toResultView(r grading.Result) *resultView {
	return &resultView{Average: r.AverageText(), Rating: r.Rating}
}

// withSession runs fn on the caller's session. The session middleware must
// be mounted in front of every handler that uses it.
func withSession(store *session.Store, r *http.Request, fn func(*grading.Session) error) error {
	return store.Update(session.IDFromContext(r.Context()), fn)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// sessionStatus maps store errors to an HTTP status.
func sessionStatus(err error) int {
	if errors.Is(err, session.ErrNotFound) {
		return http.StatusGone
	}
	log.Printf("session update: %v", err)
	return http.StatusInternalServerError
}
