package memo

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// spanSince is the span from start until now.
func spanSince(start time.Time) TimeSpan {
	return timespan.BetweenTimes(start, time.Now())
}
