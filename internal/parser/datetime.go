package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/laulijun/udo/internal/domain"
)

// datePattern matches D/M/Y candidates: 1-2 digit day and month, 2 or 4
// digit year. Trailing noise (commas, words) never enters a match, so a
// matched candidate either parses or is a format error.
var datePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{1,4})`)

// timePattern matches 12-hour clock candidates: an optional :mm directly
// before the AM/PM marker, or a bare 1-2 digit hour directly before it.
var timePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?(am|pm)`)

// ExtractDates scans text for calendar dates in day/month/year order and
// returns them left to right. A token that matches the date shape but
// names an impossible date (month 13, 31/2, a three-digit year) is a
// *domain.FormatError; text that never matches is simply not a date.
func ExtractDates(text string) ([]domain.Date, error) {
	var dates []domain.Date
	for _, m := range datePattern.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if len(m[3]) != 2 && len(m[3]) != 4 {
			return nil, &domain.FormatError{Token: m[0], Reason: "year must have 2 or 4 digits"}
		}
		year, _ := strconv.Atoi(m[3])

		d := domain.Date{Day: day, Month: month, Year: domain.ExpandYear(year)}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ExtractTimes scans text for 12-hour clock times and returns them left
// to right, converted to 24-hour values: 12AM is hour 0, 12PM is hour
// 12, other PM hours gain 12. A matched candidate with an out-of-range
// hour or minute is a *domain.FormatError; anything that never matches
// the shape (a stray "am", a spaced "9 pm") is skipped.
func ExtractTimes(text string) ([]domain.TimeOfDay, error) {
	var times []domain.TimeOfDay
	for _, m := range timePattern.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return nil, &domain.FormatError{Token: m[0], Reason: "hour out of range on a 12-hour clock"}
		}

		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
			if minute > 59 {
				return nil, &domain.FormatError{Token: m[0], Reason: "minute out of range"}
			}
		}

		pm := strings.EqualFold(m[3], "pm")
		switch {
		case hour == 12 && !pm:
			hour = 0
		case hour != 12 && pm:
			hour += 12
		}
		times = append(times, domain.TimeOfDay{Hour: hour, Minute: minute})
	}
	return times, nil
}
