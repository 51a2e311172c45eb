package grading

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoValidGrades is returned when no entry holds a grade in [1.0, 5.0].
var ErrNoValidGrades = errors.New("enter at least one valid grade in [1.0, 5.0]")

// Result is the outcome of a successful compute.
type Result struct {
	Average decimal.Decimal // rounded to 2 places
	Rating  Rating
}

// AverageText formats the average with exactly two decimals.
func (r Result) AverageText() string { return r.Average.StringFixed(2) }

// ValidGrades returns the grades of entries that parse to a number inside
// the scale, in list order. Names are ignored.
func ValidGrades(entries []Subject) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(entries))
	for _, s := range entries {
		g, ok := parseGrade(s.Grade)
		if !ok || g.LessThan(MinGrade) || g.GreaterThan(MaxGrade) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Compute averages the valid grades, rounds half away from zero to two
// places and classifies the rounded value. Invalid rows are skipped.
func Compute(entries []Subject) (Result, error) {
	grades := ValidGrades(entries)
	if len(grades) == 0 {
		return Result{}, ErrNoValidGrades
	}
	sum := decimal.Zero
	for _, g := range grades {
		sum = sum.Add(g)
	}
	avg := sum.DivRound(decimal.NewFromInt(int64(len(grades))), 2)
	return Result{Average: avg, Rating: Classify(avg)}, nil
}
