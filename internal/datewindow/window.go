package datewindow

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Rejection errors surfaced verbatim in failure envelopes.
var (
	ErrEndBeforeStart = errors.New("end_date cannot be before start_date.")
	ErrInvalidFormat  = errors.New("Invalid date format. Use YYYY-MM-DD.")
)

// dayEnd is the offset from a UTC day start to its inclusive end,
// 23:59:59.999999.
const dayEnd = 24*time.Hour - time.Microsecond

// Window is the UTC time span [Start, End] used to filter commits by
// commit date. End >= Start always holds for a constructed Window.
type Window struct {
	Start time.Time
	End   time.Time
}

// Today returns the window covering the current UTC day.
func Today() Window {
	return forDay(time.Now().UTC())
}

// Parse builds a window from two YYYY-MM-DD strings, each expanded to
// UTC day boundaries. It returns ErrInvalidFormat if either string does
// not parse and ErrEndBeforeStart if the expanded end precedes the start.
func Parse(startDate, endDate string) (Window, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return Window{}, ErrInvalidFormat
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return Window{}, ErrInvalidFormat
	}

	w := Window{Start: start, End: end.Add(dayEnd)}
	if w.End.Before(w.Start) {
		return Window{}, ErrEndBeforeStart
	}
	return w, nil
}

func forDay(t time.Time) Window {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Window{Start: day, End: day.Add(dayEnd)}
}

// StartISO returns the window start in RFC 3339 form, as the GitHub
// `since` parameter expects.
func (w Window) StartISO() string {
	return w.Start.Format(time.RFC3339Nano)
}

// EndISO returns the window end in RFC 3339 form, as the GitHub `until`
// parameter expects.
func (w Window) EndISO() string {
	return w.End.Format(time.RFC3339Nano)
}
