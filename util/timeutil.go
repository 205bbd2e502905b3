package util

import (
	"fmt"
	"time"
)

// starttimeLayouts covers the datetime shapes the Graph API hands back:
// RFC3339 and the same format with a colonless zone offset, plus a bare
// date for all-day events.
var starttimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02",
}

// ParseStarttime parses an ISO-8601 event start time.
func ParseStarttime(startTime string) (time.Time, error) {
	for _, layout := range starttimeLayouts {
		if ts, err := time.Parse(layout, startTime); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable start time %q", startTime)
}

// StarttimeDifference returns the signed number of seconds between the
// reference unix timestamp and the event start time. Positive means the
// event lies in the future.
func StarttimeDifference(currentTime int64, startTime string) (float64, error) {
	ts, err := ParseStarttime(startTime)
	if err != nil {
		return 0, err
	}
	return float64(ts.Unix() - currentTime), nil
}
