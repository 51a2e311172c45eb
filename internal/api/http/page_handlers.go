package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mind-engage/gradecalc/internal/grading"
	"github.com/mind-engage/gradecalc/internal/session"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type pageData struct {
	Subjects  []grading.Subject
	CanRemove bool
	Result    *resultView
	Alert     string
	Bands     []grading.Band
}

func renderPage(w http.ResponseWriter, status int, v sessionView, alert string) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{
		Subjects:  v.Subjects,
		CanRemove: v.CanRemove,
		Result:    v.Result,
		Alert:     alert,
		Bands:     grading.Bands(),
	}); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, "render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// applyRows copies every submitted row into the session. The form posts
// parallel id/name/grade lists, one entry per row in display order.
func applyRows(s *grading.Session, r *http.Request) {
	ids := r.PostForm["id"]
	names := r.PostForm["name"]
	grades := r.PostForm["grade"]
	for i, id := range ids {
		if i < len(names) {
			s.Subjects.Update(id, grading.FieldName, names[i])
		}
		if i < len(grades) {
			s.Subjects.Update(id, grading.FieldGrade, grades[i])
		}
	}
}

// GET /
func PageHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v sessionView
		err := withSession(store, r, func(s *grading.Session) error {
			v = viewOf(s)
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), sessionStatus(err))
			return
		}
		renderPage(w, http.StatusOK, v, "")
	}
}

// formAction wraps a page mutation: parse the form, keep what the user
// typed, apply fn and go back to the page.
func formAction(store *session.Store, fn func(s *grading.Session, r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
			return
		}
		err := withSession(store, r, func(s *grading.Session) error {
			applyRows(s, r)
			fn(s, r)
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), sessionStatus(err))
			return
		}
		redirectHome(w, r)
	}
}

// POST /save
func SaveRowsFormHandler(store *session.Store) http.HandlerFunc {
	return formAction(store, func(*grading.Session, *http.Request) {})
}

// POST /subjects
func AddSubjectFormHandler(store *session.Store) http.HandlerFunc {
	return formAction(store, func(s *grading.Session, _ *http.Request) {
		s.Subjects.Add()
	})
}

// POST /subjects/{subjectID}/remove
func RemoveSubjectFormHandler(store *session.Store) http.HandlerFunc {
	return formAction(store, func(s *grading.Session, r *http.Request) {
		s.Subjects.Remove(chi.URLParam(r, "subjectID"))
	})
}

// POST /reset
func ResetFormHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := withSession(store, r, func(s *grading.Session) error {
			s.Reset()
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), sessionStatus(err))
			return
		}
		redirectHome(w, r)
	}
}

// POST /compute saves the rows first, then computes. A failed compute
// renders the page with the alert instead of redirecting.
func ComputeFormHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
			return
		}
		var v sessionView
		var computeErr error
		err := withSession(store, r, func(s *grading.Session) error {
			applyRows(s, r)
			_, computeErr = s.Compute()
			v = viewOf(s)
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), sessionStatus(err))
			return
		}
		if errors.Is(computeErr, grading.ErrNoValidGrades) {
			renderPage(w, http.StatusUnprocessableEntity, v, "Please "+computeErr.Error()+".")
			return
		}
		redirectHome(w, r)
	}
}
