package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags_OrderAndDuplicates(t *testing.T) {
	tags := ExtractTags("finish #cs2010 #homework then #cs2010 again")
	assert.Equal(t, []string{"cs2010", "homework", "cs2010"}, tags)
}

func TestExtractTags_RunsToEndOfString(t *testing.T) {
	tags := ExtractTags("read book #leisure")
	assert.Equal(t, []string{"leisure"}, tags)
}

func TestExtractTags_BareMarkerIgnored(t *testing.T) {
	assert.Empty(t, ExtractTags("nothing # here"))
	assert.Empty(t, ExtractTags("no tags at all"))
}

func TestExtractTitle_BeforeFirstMarker(t *testing.T) {
	title := ExtractTitle("standup #work from 9:00am to 9:30am", true)
	assert.Equal(t, "standup", title)
}

func TestExtractTitle_KeywordPriority(t *testing.T) {
	// "from" wins over "by" and "on" even when it appears earlier.
	title := ExtractTitle("travel from 1/1/14 on the 9pm train", true)
	assert.Equal(t, "travel", title)

	title = ExtractTitle("buy milk on 20/05/2024", true)
	assert.Equal(t, "buy milk", title)

	title = ExtractTitle("make bands by 12/12/13 9:31am", true)
	assert.Equal(t, "make bands", title)
}

func TestExtractTitle_RightmostKeyword(t *testing.T) {
	title := ExtractTitle("move on and carry on 20/05/2024", true)
	assert.Equal(t, "move on and carry", title)
}

func TestExtractTitle_KeywordInsideWordIgnored(t *testing.T) {
	title := ExtractTitle("buy fromage 20/05/2024", true)
	assert.Equal(t, "buy fromage 20/05/2024", title)
}

func TestExtractTitle_NoTrimWithoutTemporal(t *testing.T) {
	title := ExtractTitle("call meow mi later on", false)
	assert.Equal(t, "call meow mi later on", title)
}

func TestExtractTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"standup #work from 9:00am to 9:30am",
		"buy milk on 20/05/2024",
		"vending machines no money",
	}
	for _, in := range inputs {
		first := ExtractTitle(in, true)

		dates, err := ExtractDates(first)
		assert.NoError(t, err)
		times, err := ExtractTimes(first)
		assert.NoError(t, err)

		second := ExtractTitle(first, len(dates) > 0 || len(times) > 0)
		assert.Equal(t, first, second)
	}
}
