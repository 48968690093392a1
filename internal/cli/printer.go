package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/laulijun/udo/internal/domain"
)

const whenLayout = "Mon 02/01/2006 15:04"

// typeGlyphs mirror the bullet-journal convention: a circle for
// events, a dot for tasks, a dash for undated plans.
var typeGlyphs = map[domain.ItemType]string{
	domain.TypeEvent: "○",
	domain.TypeTask:  "•",
	domain.TypePlan:  "–",
}

// PrintItems renders items as an aligned table.
func PrintItems(w io.Writer, items []domain.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(w, " none")
		return
	}

	id := color.New(color.FgHiYellow, color.Faint)
	tag := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		tbl.AddRow(
			id.Sprintf("%d", it.ID),
			typeGlyphs[it.Type],
			it.Title,
			formatWhen(it),
			tag.Sprint(formatTags(it.Tags)),
		)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// formatWhen renders the item's temporal half for display.
func formatWhen(it domain.Item) string {
	switch it.Type {
	case domain.TypeEvent:
		if sameInstantDay(it.Start, it.End) {
			return fmt.Sprintf("%s - %s", it.Start.Format(whenLayout), it.End.Format("15:04"))
		}
		return fmt.Sprintf("%s - %s", it.Start.Format(whenLayout), it.End.Format(whenLayout))
	case domain.TypeTask:
		return "by " + it.Due.Format(whenLayout)
	default:
		return ""
	}
}

func sameInstantDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

// PrintResult writes one feedback line for an executed command.
func PrintResult(w io.Writer, res *domain.Result) {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	if res.Parse == domain.ParseFail {
		_, _ = bad.Fprintf(w, "could not understand the %s command\n", res.Command)
		return
	}
	if res.Exec == domain.ExecFail {
		_, _ = bad.Fprintf(w, "%s failed\n", res.Command)
		return
	}

	switch {
	case res.Command.IsAdd():
		_, _ = ok.Fprintf(w, "added %s %d: %s\n", res.Item.Type, res.Item.ID, res.Item.Title)
	case res.Command == domain.CmdDelete:
		_, _ = ok.Fprintf(w, "deleted %s %d: %s\n", res.Item.Type, res.Item.ID, res.Item.Title)
	case res.Command == domain.CmdEdit:
		_, _ = ok.Fprintf(w, "edited %s %d: %s\n", res.Item.Type, res.Item.ID, res.Item.Title)
	case res.Command == domain.CmdList:
		PrintItems(w, res.Items)
	case res.Command == domain.CmdSave:
		_, _ = ok.Fprintln(w, "saved")
	case res.Command == domain.CmdExit:
		_, _ = ok.Fprintln(w, "bye")
	default:
		_, _ = ok.Fprintf(w, "%s done\n", res.Command)
	}
}
