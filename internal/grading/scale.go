package grading

import "github.com/shopspring/decimal"

// Rating is the qualitative label for a rounded average.
type Rating string

const (
	RatingExcellent          Rating = "Excellent"
	RatingSuperior           Rating = "Superior"
	RatingVeryGood           Rating = "Very Good"
	RatingGood               Rating = "Good"
	RatingPassed             Rating = "Passed"
	RatingConditionalFailure Rating = "Conditional Failure"
	RatingFailure            Rating = "Failure"
	RatingInvalid            Rating = "Invalid Grade"
)

// Band is one row of the grading scale. Min and Max are inclusive.
type Band struct {
	Rating Rating          `json:"rating"`
	Range  string          `json:"range"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Color  string          `json:"color"` // display token for the reference table
}

var (
	MinGrade = decimal.RequireFromString("1.0")
	MaxGrade = decimal.RequireFromString("5.0")
)

var bands = []Band{
	band(RatingExcellent, "1.0 - 1.4", "1.0", "1.4", "green-strong"),
	band(RatingSuperior, "1.5 - 1.9", "1.5", "1.9", "green"),
	band(RatingVeryGood, "2.0 - 2.4", "2.0", "2.4", "blue-strong"),
	band(RatingGood, "2.5 - 2.9", "2.5", "2.9", "blue"),
	band(RatingPassed, "3.0", "3.0", "3.0", "yellow"),
	band(RatingConditionalFailure, "3.1 - 4.0", "3.1", "4.0", "orange"),
	band(RatingFailure, "4.1 - 5.0", "4.1", "5.0", "red"),
}

func band(r Rating, label, lo, hi, color string) Band {
	return Band{
		Rating: r,
		Range:  label,
		Min:    decimal.RequireFromString(lo),
		Max:    decimal.RequireFromString(hi),
		Color:  color,
	}
}

// Bands returns the scale in classification order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify returns the first band containing avg. Values between two bands
// (1.45, 3.05, ...) and values off the scale are RatingInvalid.
func Classify(avg decimal.Decimal) Rating {
	for _, b := range bands {
		if avg.GreaterThanOrEqual(b.Min) && avg.LessThanOrEqual(b.Max) {
			return b.Rating
		}
	}
	return RatingInvalid
}
