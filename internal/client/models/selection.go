package models

import "time"

// All selects every year or every month.
const All = -1

// Selection narrows the displayed snapshot by creation year and month.
// Month is zero-based (January is 0).
type Selection struct {
	Year  int
	Month int
}

// AllTime is the selection that shows the whole snapshot.
var AllTime = Selection{Year: All, Month: All}

// MonthOption is an entry of the month selector.
type MonthOption struct {
	Index int
	Name  string
}

// Months returns the twelve month options in calendar order.
func Months() []MonthOption {
	out := make([]MonthOption, 12)
	for i := range out {
		out[i] = MonthOption{Index: i, Name: time.Month(i + 1).String()}
	}
	return out
}
