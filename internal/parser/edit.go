package parser

import (
	"strconv"
	"strings"

	"github.com/laulijun/udo/internal/domain"
)

// editFields maps the two-token field keywords to their EditField.
// "title" is handled separately since it is one token.
var editFields = map[string]domain.EditField{
	"start date": domain.FieldStartDate,
	"start time": domain.FieldStartTime,
	"end date":   domain.FieldEndDate,
	"end time":   domain.FieldEndTime,
	"due date":   domain.FieldDueDate,
	"due time":   domain.FieldDueTime,
}

// parseEdit accepts "<id> <field> <value>". The value's shape must
// match the field: free text for title, exactly one date for *date
// fields, exactly one time for *time fields.
func (p *Parser) parseEdit(rest string) *domain.Intent {
	tokens := strings.Fields(rest)
	if len(tokens) < 3 {
		return domain.Failed(domain.CmdEdit)
	}

	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return domain.Failed(domain.CmdEdit)
	}

	if tokens[1] == "title" {
		// Cut at the keyword to preserve the value's own spacing.
		idx := strings.Index(rest, "title")
		value := strings.TrimSpace(rest[idx+len("title"):])
		if value == "" {
			return domain.Failed(domain.CmdEdit)
		}
		return &domain.Intent{
			Command: domain.CmdEdit,
			Status:  domain.ParseSuccess,
			ID:      id,
			Field:   domain.FieldTitle,
			Text:    value,
		}
	}

	if len(tokens) < 4 {
		return domain.Failed(domain.CmdEdit)
	}
	field, ok := editFields[tokens[1]+" "+tokens[2]]
	if !ok {
		return domain.Failed(domain.CmdEdit)
	}
	value := strings.Join(tokens[3:], " ")

	intent := &domain.Intent{Command: domain.CmdEdit, Status: domain.ParseSuccess, ID: id, Field: field}
	switch field {
	case domain.FieldStartDate, domain.FieldEndDate, domain.FieldDueDate:
		dates, err := ExtractDates(value)
		if err != nil || len(dates) != 1 {
			return domain.Failed(domain.CmdEdit)
		}
		intent.Date = dates[0]
	default:
		times, err := ExtractTimes(value)
		if err != nil || len(times) != 1 {
			return domain.Failed(domain.CmdEdit)
		}
		intent.Time = times[0]
	}
	return intent
}
