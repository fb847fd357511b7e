package models

import "time"

// ISOLayout is the timestamp format persisted everywhere: local time with
// microsecond precision and no zone suffix ("2025-05-16T15:32:25.181226").
const ISOLayout = "2006-01-02T15:04:05.000000"

// NowISO stamps the current time in ISOLayout.
func NowISO() string {
	return time.Now().Format(ISOLayout)
}
