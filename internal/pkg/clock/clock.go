// Package clock abstracts the wall clock so services can be tested
// against fixed points in time.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// At builds a fixed clock from a date and time-of-day string, both in the
// formats used throughout the API ("2006-01-02", "15:04").
func At(date, timeOfDay string) Fixed {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	tod, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		panic(err)
	}
	return Fixed{T: time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)}
}
