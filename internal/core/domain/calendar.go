package domain

import "time"

// BusinessCalendar decides which dates the central bank publishes rates for.
// It is built once from configuration and injected wherever business-day
// logic is needed; it never changes after construction.
type BusinessCalendar struct {
	location *time.Location
	holidays map[string]string // yyyy-mm-dd -> holiday name
}

// NewBusinessCalendar builds a calendar for a timezone and a holiday set
// keyed by date in yyyy-mm-dd form.
func NewBusinessCalendar(location *time.Location, holidays map[string]string) *BusinessCalendar {
	if location == nil {
		location = time.UTC
	}
	h := make(map[string]string, len(holidays))
	for k, v := range holidays {
		h[k] = v
	}
	return &BusinessCalendar{location: location, holidays: h}
}

// Location returns the calendar's timezone.
func (c *BusinessCalendar) Location() *time.Location {
	return c.location
}

// HolidayName returns the holiday falling on the given date, if any.
func (c *BusinessCalendar) HolidayName(date time.Time) (string, bool) {
	name, ok := c.holidays[date.In(c.location).Format("2006-01-02")]
	return name, ok
}

// IsBusinessDay reports whether rates are published on the given date.
func (c *BusinessCalendar) IsBusinessDay(date time.Time) bool {
	d := date.In(c.location)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.HolidayName(d)
	return !holiday
}

// LastBusinessDay returns the most recent business day strictly before the
// given date, looking back at most ten days.
func (c *BusinessCalendar) LastBusinessDay(from time.Time) time.Time {
	d := from.In(c.location)
	for i := 0; i < 10; i++ {
		d = d.AddDate(0, 0, -1)
		if c.IsBusinessDay(d) {
			return d
		}
	}
	return from.In(c.location)
}

// DefaultJamaicaCalendar returns the calendar for the Jamaican market with
// the gazetted public holidays.
func DefaultJamaicaCalendar() *BusinessCalendar {
	loc, err := time.LoadLocation("America/Jamaica")
	if err != nil {
		loc = time.FixedZone("EST", -5*60*60)
	}
	return NewBusinessCalendar(loc, map[string]string{
		"2024-01-01": "New Year's Day",
		"2024-02-14": "Ash Wednesday",
		"2024-03-29": "Good Friday",
		"2024-04-01": "Easter Monday",
		"2024-05-23": "Labour Day",
		"2024-08-01": "Emancipation Day",
		"2024-08-06": "Independence Day",
		"2024-10-21": "National Heroes Day",
		"2024-12-25": "Christmas Day",
		"2024-12-26": "Boxing Day",
		"2025-01-01": "New Year's Day",
		"2025-02-26": "Ash Wednesday",
		"2025-04-18": "Good Friday",
		"2025-04-21": "Easter Monday",
		"2025-05-23": "Labour Day",
		"2025-08-01": "Emancipation Day",
		"2025-08-06": "Independence Day",
		"2025-10-20": "National Heroes Day",
		"2025-12-25": "Christmas Day",
		"2025-12-26": "Boxing Day",
		"2026-01-01": "New Year's Day",
		"2026-02-18": "Ash Wednesday",
		"2026-04-03": "Good Friday",
		"2026-04-06": "Easter Monday",
		"2026-05-25": "Labour Day",
		"2026-08-01": "Emancipation Day",
		"2026-08-06": "Independence Day",
		"2026-10-19": "National Heroes Day",
		"2026-12-25": "Christmas Day",
		"2026-12-28": "Boxing Day (observed)",
	})
}
