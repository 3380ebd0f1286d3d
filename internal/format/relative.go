package format

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const week = 7 * 24 * time.Hour

// RelativeTime renders the age of ts as seen at now: "now", "5m", "2h", "3d",
// or a calendar date once the age reaches a week. Future timestamps render as "now".
func (f *Formatter) RelativeTime(ts, now time.Time) string {
	age := now.Sub(ts)
	if age < 0 {
		age = 0
	}

	switch {
	case age < time.Minute:
		return "now"
	case age < time.Hour:
		return fmt.Sprintf("%dm", int64(age/time.Minute))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int64(age/time.Hour))
	case age < week:
		return fmt.Sprintf("%dd", int64(age/(24*time.Hour)))
	}
	return ts.Format(f.locale.date)
}

// MessageTime is the hour and minute a message was sent.
func (f *Formatter) MessageTime(ts time.Time) string {
	return ts.Format(f.locale.clock)
}

func RelativeTime(ts, now time.Time) string {
	return defaultFormatter.RelativeTime(ts, now)
}

// CheckSkew reports ErrInvalidInput when ts lies further in the future than tolerance.
func CheckSkew(ts, now time.Time, tolerance time.Duration) error {
	if ahead := ts.Sub(now); ahead > tolerance {
		return errors.Wrapf(ErrInvalidInput, "timestamp %s is %s ahead of now", ts.Format(time.RFC3339), ahead)
	}
	return nil
}
