package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mind-engage/gradecalc/internal/grading"
	"github.com/mind-engage/gradecalc/internal/session"
)

// GET /api/session
func GetSessionHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v sessionView
		err := withSession(store, r, func(s *grading.Session) error {
			v = viewOf(s)
			return nil
		})
		if err != nil {
			writeJSONError(w, sessionStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /api/subjects
func AddSubjectHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var added grading.Subject
		err := withSession(store, r, func(s *grading.Session) error {
			added = s.Subjects.Add()
			return nil
		})
		if err != nil {
			writeJSONError(w, sessionStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, added)
	}
}

type updateSubjectReq struct {
	Field string `json:"field"` // name|grade
	Value string `json:"value"`
}

// PATCH /api/subjects/{subjectID}
func UpdateSubjectHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "subjectID"))
		var req updateSubjectReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		field, err := grading.ParseField(req.Field)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		var v sessionView
		err = withSession(store, r, func(s *grading.Session) error {
			s.Subjects.Update(id, field, req.Value)
			v = viewOf(s)
			return nil
		})
		if err != nil {
			writeJSONError(w, sessionStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// DELETE /api/subjects/{subjectID}
func RemoveSubjectHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "subjectID"))
		var v sessionView
		err := withSession(store, r, func(s *grading.Session) error {
			s.Subjects.Remove(id)
			v = viewOf(s)
			return nil
		})
		if err != nil {
			writeJSONError(w, sessionStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /api/compute
func ComputeHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res grading.Result
		err := withSession(store, r, func(s *grading.Session) error {
			var err error
			res, err = s.Compute()
			return err
		})
		switch {
		case errors.Is(err, grading.ErrNoValidGrades):
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		case err != nil:
			writeJSONError(w, sessionStatus(err), err.Error())
		default:
			writeJSON(w, http.StatusOK, toResultView(res))
		}
	}
}

// POST /api/reset
func ResetHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v sessionView
		err := withSession(store, r, func(s *grading.Session) error {
			s.Reset()
			v = viewOf(s)
			return nil
		})
		if err != nil {
			writeJSONError(w, sessionStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// GET /api/scale
func ScaleHandler() http.HandlerFunc {
	bands := grading.Bands()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bands)
	}
}
