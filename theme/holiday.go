package theme

import (
	"log/slog"
	"time"

	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/utils"
)

type Holiday struct {
	Name string
	ID   int
	// Week holidays are active for the whole Monday to Sunday week
	// containing the date, the others only on the day itself.
	Week bool
	Date func(year int) time.Time
}

func fixed(month time.Month, day int) func(int) time.Time {
	return func(year int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	}
}

var Holidays = []Holiday{
	{Name: "new_years", ID: 1, Date: fixed(time.January, 1)},
	{Name: "valentines", ID: 2, Date: fixed(time.February, 14)},
	{Name: "st_patricks", ID: 3, Date: fixed(time.March, 17)},
	{Name: "world_frog_day", ID: 4, Date: fixed(time.March, 20)},
	{Name: "april_fools", ID: 5, Date: fixed(time.April, 1)},
	{Name: "easter_week", ID: 6, Week: true, Date: Easter},
	{Name: "cinco_de_mayo", ID: 7, Date: fixed(time.May, 5)},
	{Name: "fourth_of_july", ID: 8, Date: fixed(time.July, 4)},
	{Name: "halloween_week", ID: 9, Week: true, Date: fixed(time.October, 31)},
	{Name: "thanksgiving_week", ID: 10, Week: true, Date: Thanksgiving},
	{Name: "christmas_week", ID: 11, Week: true, Date: fixed(time.December, 25)},
}

// Easter computes Easter Sunday with the anonymous Gregorian algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// Thanksgiving is the fourth Thursday of November.
func Thanksgiving(year int) time.Time {
	first := time.Date(year, time.November, 1, 0, 0, 0, 0, time.Local)
	offset := (int(time.Thursday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+21)
}

func sameDay(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// WithinWeekOf reports whether date falls in the Monday to Sunday week that
// contains target. Only the calendar day of date counts, so all of Sunday up
// to the following Monday 00:00 is inside the week.
func WithinWeekOf(target time.Time, date time.Time) bool {
	sinceMonday := (int(target.Weekday()) + 6) % 7
	start := time.Date(target.Year(), target.Month(), target.Day()-sinceMonday, 0, 0, 0, 0, target.Location())
	end := start.AddDate(0, 0, 7)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, target.Location())
	return !day.Before(start) && day.Before(end)
}

// CurrentHoliday returns the holiday active on now, if any.
func CurrentHoliday(now time.Time) (Holiday, bool) {
	for _, holiday := range Holidays {
		date := holiday.Date(now.Year())
		if holiday.Week && WithinWeekOf(date, now) || sameDay(date, now) {
			return holiday, true
		}
	}
	return Holiday{}, false
}

// ThemeManager publishes the current holiday theme id to memory params
// whenever it changes.
type ThemeManager struct {
	paramsMemory      ParamStore
	previousThemeID   int
	previousThemeName string
}

type ParamStore interface {
	PutInt(key string, val int) error
}

func NewThemeManager(memory ParamStore) *ThemeManager {
	return &ThemeManager{paramsMemory: memory}
}

// Update returns the active holiday theme name ("" for none) and whether it
// changed since the last call.
func (m *ThemeManager) Update(now time.Time) (name string, changed bool) {
	holiday, ok := CurrentHoliday(now)
	if !ok {
		holiday = Holiday{}
	}

	if holiday.ID == m.previousThemeID {
		return m.previousThemeName, false
	}

	utils.Logwe(m.paramsMemory.PutInt(params.CURRENT_HOLIDAY_THEME, holiday.ID))
	slog.Info("holiday theme changed", "theme", holiday.Name, "id", holiday.ID)
	m.previousThemeID = holiday.ID
	m.previousThemeName = holiday.Name
	return holiday.Name, true
}
