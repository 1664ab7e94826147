package model

import "time"

// DisplayDate formats t like "Jan 02, 2006". A zero time yields an empty string.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006")
}
