package parser

import (
	"regexp"
	"time"

	"github.com/laulijun/udo/internal/domain"
)

// rangePattern detects an explicit "from ... to" span, which forces
// event classification even when only one temporal value was found.
var rangePattern = regexp.MustCompile(`\bfrom\b.*\bto\b`)

// parseAdd extracts dates, times, tags and the title from the text
// after the add keyword, classifies the item, and builds the intent.
//
// Classification: two temporal values (or an explicit range) make an
// event, a single date and/or time makes a task due then, and no
// temporal value at all makes a plan.
func (p *Parser) parseAdd(rest string) *domain.Intent {
	dates, err := ExtractDates(rest)
	if err != nil {
		return domain.Failed(domain.CmdAddEvent)
	}
	times, err := ExtractTimes(rest)
	if err != nil {
		return domain.Failed(domain.CmdAddEvent)
	}

	title := ExtractTitle(rest, len(dates) > 0 || len(times) > 0)
	if title == "" {
		return domain.Failed(domain.CmdAddEvent)
	}
	tags := ExtractTags(rest)

	isEvent := len(dates) >= 2 || len(times) >= 2 || rangePattern.MatchString(rest)
	switch {
	case isEvent:
		start, end, ok := p.eventSpan(dates, times)
		if !ok || end.Before(start) {
			return domain.Failed(domain.CmdAddEvent)
		}
		return &domain.Intent{
			Command: domain.CmdAddEvent,
			Status:  domain.ParseSuccess,
			Title:   title,
			Tags:    tags,
			Start:   start,
			End:     end,
		}
	case len(dates) == 1 || len(times) == 1:
		return &domain.Intent{
			Command: domain.CmdAddTask,
			Status:  domain.ParseSuccess,
			Title:   title,
			Tags:    tags,
			Due:     p.dueAt(dates, times),
		}
	default:
		return &domain.Intent{
			Command: domain.CmdAddPlan,
			Status:  domain.ParseSuccess,
			Title:   title,
			Tags:    tags,
		}
	}
}

// eventSpan pairs the extracted dates and times into start and end
// timestamps. A single date covers both endpoints, a missing date means
// today, a missing start time means midnight, and a missing end time
// carries the start time across to the second date. Events need at
// least one temporal value; a bare "from ... to" with none fails.
func (p *Parser) eventSpan(dates []domain.Date, times []domain.TimeOfDay) (start, end time.Time, ok bool) {
	if len(dates) == 0 && len(times) == 0 {
		return time.Time{}, time.Time{}, false
	}

	startDate := domain.DateOf(p.clock.Now())
	if len(dates) >= 1 {
		startDate = dates[0]
	}
	endDate := startDate
	if len(dates) >= 2 {
		endDate = dates[1]
	}

	var startTime domain.TimeOfDay
	if len(times) >= 1 {
		startTime = times[0]
	}
	endTime := startTime
	if len(times) >= 2 {
		endTime = times[1]
	}

	return domain.At(startDate, startTime), domain.At(endDate, endTime), true
}

// dueAt builds the due timestamp for a task: the extracted date (or
// today) at the extracted time (or midnight).
func (p *Parser) dueAt(dates []domain.Date, times []domain.TimeOfDay) time.Time {
	date := domain.DateOf(p.clock.Now())
	if len(dates) == 1 {
		date = dates[0]
	}
	var clock domain.TimeOfDay
	if len(times) == 1 {
		clock = times[0]
	}
	return domain.At(date, clock)
}
