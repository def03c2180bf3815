// Package horizon maps forecast indices to calendar months. Each horizon
// month carries its holiday and workday counts for the French retail
// calendar, used when reviewing forecasted demand against trading days.
package horizon

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/fr"
)

// Month is one forecast period mapped onto the calendar.
type Month struct {
	Label    string    `json:"label"`
	Start    time.Time `json:"start"`
	Holidays int       `json:"holidays"`
	Workdays int       `json:"workdays"`
}

func newCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(fr.Holidays...)
	return c
}

// Months returns the periods calendar months following the month containing
// after, in chronological order. The first horizon month starts the month
// after the last historical observation.
func Months(after time.Time, periods int) []Month {
	c := newCalendar()
	base := time.Date(after.Year(), after.Month(), 1, 0, 0, 0, 0, after.Location())

	months := make([]Month, 0, periods)
	for i := 0; i < periods; i++ {
		start := base.AddDate(0, i+1, 0)
		end := start.AddDate(0, 1, -1)
		months = append(months, Month{
			Label:    start.Format("January 2006"),
			Start:    start,
			Holidays: holidaysIn(c, start),
			Workdays: c.WorkdaysInRange(start, end),
		})
	}
	return months
}

func holidaysIn(c *cal.BusinessCalendar, start time.Time) int {
	n := 0
	for _, hol := range c.Holidays {
		actual, _ := hol.Calc(start.Year())
		if !actual.IsZero() && actual.Month() == start.Month() {
			n++
		}
	}
	return n
}
