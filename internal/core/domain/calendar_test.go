package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

func TestBusinessCalendar_IsBusinessDay(t *testing.T) {
	cal := domain.DefaultJamaicaCalendar()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "regular weekday", date: time.Date(2025, 3, 12, 12, 0, 0, 0, cal.Location()), want: true},
		{name: "saturday", date: time.Date(2025, 3, 15, 12, 0, 0, 0, cal.Location()), want: false},
		{name: "sunday", date: time.Date(2025, 3, 16, 12, 0, 0, 0, cal.Location()), want: false},
		{name: "christmas day", date: time.Date(2025, 12, 25, 12, 0, 0, 0, cal.Location()), want: false},
		{name: "independence day", date: time.Date(2025, 8, 6, 12, 0, 0, 0, cal.Location()), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.IsBusinessDay(tt.date))
		})
	}
}

func TestBusinessCalendar_LastBusinessDay(t *testing.T) {
	cal := domain.DefaultJamaicaCalendar()

	// Sunday 2025-04-20 sits after Good Friday (Apr 18); the last business
	// day is Thursday Apr 17.
	sunday := time.Date(2025, 4, 20, 9, 0, 0, 0, cal.Location())
	got := cal.LastBusinessDay(sunday)
	assert.Equal(t, time.Date(2025, 4, 17, 9, 0, 0, 0, cal.Location()).Format("2006-01-02"), got.Format("2006-01-02"))

	// A plain Tuesday looks back to Monday.
	tuesday := time.Date(2025, 3, 11, 9, 0, 0, 0, cal.Location())
	got = cal.LastBusinessDay(tuesday)
	assert.Equal(t, "2025-03-10", got.Format("2006-01-02"))
}

func TestBusinessCalendar_HolidayName(t *testing.T) {
	cal := domain.DefaultJamaicaCalendar()

	name, ok := cal.HolidayName(time.Date(2025, 12, 25, 0, 0, 0, 0, cal.Location()))
	assert.True(t, ok)
	assert.Equal(t, "Christmas Day", name)

	_, ok = cal.HolidayName(time.Date(2025, 12, 24, 0, 0, 0, 0, cal.Location()))
	assert.False(t, ok)
}
