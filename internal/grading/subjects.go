package grading

import (
	"fmt"

	"github.com/google/uuid"
)

// Subject is one row of the form. Grade is kept as the raw text the user
// typed so partial input like "3." survives until compute time.
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// Field names an editable column of a Subject.
type Field string

const (
	FieldName  Field = "name"
	FieldGrade Field = "grade"
)

func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldGrade:
		return f, nil
	default:
		return "", fmt.Errorf("unknown field %q", s)
	}
}

// SubjectList is the ordered set of rows. It never drops below one entry.
type SubjectList struct {
	entries []Subject
	newID   func() string
}

func NewSubjectList() *SubjectList {
	l := &SubjectList{newID: uuid.NewString}
	l.Reset()
	return l
}

// Add appends an empty row and returns it.
func (l *SubjectList) Add() Subject {
	s := Subject{ID: l.newID()}
	l.entries = append(l.entries, s)
	return s
}

// Remove drops the row with the given id unless it is the last one left.
// It reports whether the list changed.
func (l *SubjectList) Remove(id string) bool {
	if !l.CanRemove() {
		return false
	}
	for i, s := range l.entries {
		if s.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Update stores value verbatim in the given field of the matching row.
func (l *SubjectList) Update(id string, field Field, value string) bool {
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		switch field {
		case FieldName:
			l.entries[i].Name = value
		case FieldGrade:
			l.entries[i].Grade = value
		default:
			return false
		}
		return true
	}
	return false
}

// Reset replaces every row with a single empty one.
func (l *SubjectList) Reset() {
	l.entries = []Subject{{ID: l.newID()}}
}

func (l *SubjectList) Get(id string) (Subject, bool) {
	for _, s := range l.entries {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// Entries returns a copy of the rows in display order.
func (l *SubjectList) Entries() []Subject {
	out := make([]Subject, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *SubjectList) Len() int { return len(l.entries) }

// CanRemove is false while only one row remains.
func (l *SubjectList) CanRemove() bool { return len(l.entries) > 1 }
