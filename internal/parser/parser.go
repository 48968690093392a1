// Package parser turns raw free-text commands into structured intents.
// Parse is a total function: malformed input yields a FAIL intent,
// never an error.
package parser

import (
	"strconv"
	"strings"

	"github.com/laulijun/udo/internal/domain"
)

// Parser classifies raw text into commands and builds intents. The
// clock supplies the current day for inputs that give a time without a
// date ("add nap from 2pm to 3pm").
type Parser struct {
	clock domain.Clock
}

// New creates a Parser. A nil clock falls back to the system clock.
func New(clock domain.Clock) *Parser {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Parser{clock: clock}
}

// Parse interprets one line of user input. The first whitespace-split
// token selects the command, case-sensitively; anything unrecognized
// produces a FAIL intent rather than an error.
func (p *Parser) Parse(raw string) *domain.Intent {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return domain.Failed(domain.CmdUnknown)
	}

	keyword := fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), keyword))

	switch keyword {
	case "add":
		return p.parseAdd(rest)
	case "list":
		return p.parseList(rest)
	case "delete":
		return p.parseDelete(rest)
	case "edit":
		return p.parseEdit(rest)
	case "undo":
		return &domain.Intent{Command: domain.CmdUndo, Status: domain.ParseSuccess}
	case "save":
		return &domain.Intent{Command: domain.CmdSave, Status: domain.ParseSuccess}
	case "exit":
		return &domain.Intent{Command: domain.CmdExit, Status: domain.ParseSuccess}
	default:
		return domain.Failed(domain.CmdUnknown)
	}
}

// parseDelete accepts exactly one integer id.
func (p *Parser) parseDelete(rest string) *domain.Intent {
	if len(strings.Fields(rest)) != 1 {
		return domain.Failed(domain.CmdDelete)
	}
	id, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return domain.Failed(domain.CmdDelete)
	}
	return &domain.Intent{Command: domain.CmdDelete, Status: domain.ParseSuccess, ID: id}
}
