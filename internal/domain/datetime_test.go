package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandYear_PivotRule(t *testing.T) {
	// 00-49 are this century, 50-99 the last.
	assert.Equal(t, 2000, ExpandYear(0))
	assert.Equal(t, 2014, ExpandYear(14))
	assert.Equal(t, 2049, ExpandYear(49))
	assert.Equal(t, 1950, ExpandYear(50))
	assert.Equal(t, 1999, ExpandYear(99))
	assert.Equal(t, 2014, ExpandYear(2014))
}

func TestDate_Validate(t *testing.T) {
	assert.NoError(t, Date{Day: 29, Month: 2, Year: 2024}.Validate())

	var formatErr *FormatError

	err := Date{Day: 1, Month: 13, Year: 2024}.Validate()
	require.ErrorAs(t, err, &formatErr)

	err = Date{Day: 31, Month: 2, Year: 2024}.Validate()
	require.ErrorAs(t, err, &formatErr)

	err = Date{Day: 29, Month: 2, Year: 2023}.Validate()
	require.ErrorAs(t, err, &formatErr)
}

func TestDate_In_PreservesClock(t *testing.T) {
	base := time.Date(2024, 5, 20, 9, 30, 0, 0, time.Local)
	got := Date{Day: 1, Month: 2, Year: 2025}.In(base)

	assert.Equal(t, time.Date(2025, 2, 1, 9, 30, 0, 0, time.Local), got)
}

func TestTimeOfDay_In_PreservesDate(t *testing.T) {
	base := time.Date(2024, 5, 20, 9, 30, 0, 0, time.Local)
	got := TimeOfDay{Hour: 23, Minute: 5}.In(base)

	assert.Equal(t, time.Date(2024, 5, 20, 23, 5, 0, 0, time.Local), got)
}

func TestAt_CombinesDateAndTime(t *testing.T) {
	got := At(Date{Day: 20, Month: 5, Year: 2024}, TimeOfDay{Hour: 9, Minute: 0})
	assert.Equal(t, time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local), got)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 20, 0, 1, 0, 0, time.Local)
	b := time.Date(2024, 5, 20, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 5, 21, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
