// Package datemath resolves the relative-date vocabulary used in task
// parsing prompts into absolute calendar dates.
package datemath

import "time"

// DateFormat is the wire format for all resolved dates.
const DateFormat = "2006-01-02"

// KST is the fixed +9h offset the product anchors all dates to.
var KST = time.FixedZone("KST", 9*60*60)

var koreanWeekdays = [7]string{
	"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일",
}

// Anchors maps every relative-date label the prompt vocabulary supports to
// an absolute YYYY-MM-DD date. Computed once per request from a single
// reference instant; never cache across requests.
type Anchors struct {
	Today         string
	Weekday       string // Korean weekday name for Today, e.g. "월요일"
	Tomorrow      string
	DayAfter      string
	DaysLater     [7]string // DaysLater[0] is "1일 후" .. DaysLater[6] is "7일 후"
	OneWeekLater  string
	TwoWeeksLater string
	OneMonthLater string // fixed 30-day offset
	NextMonday    string
}

// Resolve computes the anchor table for the given reference instant.
// The instant is shifted into KST before any calendar math, so callers can
// pass a plain UTC clock reading.
func Resolve(ref time.Time) Anchors {
	base := ref.In(KST)

	a := Anchors{
		Today:         base.Format(DateFormat),
		Weekday:       koreanWeekdays[int(base.Weekday())],
		Tomorrow:      base.AddDate(0, 0, 1).Format(DateFormat),
		DayAfter:      base.AddDate(0, 0, 2).Format(DateFormat),
		OneWeekLater:  base.AddDate(0, 0, 7).Format(DateFormat),
		TwoWeeksLater: base.AddDate(0, 0, 14).Format(DateFormat),
		OneMonthLater: base.AddDate(0, 0, 30).Format(DateFormat),
	}

	for i := range a.DaysLater {
		a.DaysLater[i] = base.AddDate(0, 0, i+1).Format(DateFormat)
	}

	// Nearest strictly-future Monday: 1..7 days ahead, never today.
	days := (8 - int(base.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	a.NextMonday = base.AddDate(0, 0, days).Format(DateFormat)

	return a
}
