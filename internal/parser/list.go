package parser

import (
	"strings"
	"time"

	"github.com/laulijun/udo/internal/domain"
)

// parseList recognizes three query shapes, checked in order: a
// tag-scoped query (text contains a tag marker), a date query (text
// contains a date separator or the word "day"), and an "all" query.
// Anything else fails.
func (p *Parser) parseList(rest string) *domain.Intent {
	lower := strings.ToLower(rest)

	switch {
	case strings.ContainsRune(rest, tagMarker):
		tags := ExtractTags(rest)
		if len(tags) == 0 {
			return domain.Failed(domain.CmdList)
		}
		return listIntent(domain.Query{Kind: domain.QueryHashtag, Tag: tags[0]})

	case strings.Contains(rest, "/") || strings.Contains(lower, "day"):
		dates, err := ExtractDates(rest)
		if err != nil {
			return domain.Failed(domain.CmdList)
		}
		from, to := p.dayRange(dates)
		return listIntent(domain.Query{Kind: domain.QueryRange, From: from, To: to})

	case strings.Contains(lower, "all"):
		return listIntent(domain.Query{Kind: domain.QueryAll})

	default:
		return domain.Failed(domain.CmdList)
	}
}

func listIntent(q domain.Query) *domain.Intent {
	return &domain.Intent{Command: domain.CmdList, Status: domain.ParseSuccess, Query: q}
}

// dayRange turns the extracted dates into an inclusive timestamp range:
// two dates span from the first day to the second, one date covers that
// single day, and no date ("list day") means today.
func (p *Parser) dayRange(dates []domain.Date) (from, to time.Time) {
	first := domain.DateOf(p.clock.Now())
	last := first
	if len(dates) >= 1 {
		first = dates[0]
		last = first
	}
	if len(dates) >= 2 {
		last = dates[1]
	}

	from = domain.At(first, domain.TimeOfDay{})
	to = domain.At(last, domain.TimeOfDay{}).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return from, to
}
