package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/laulijun/udo/internal/domain"
)

const (
	dayHeaderLayout = "Mon 02/01/2006"
	clockLayout     = "15:04"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Header.Render("udo"))
	b.WriteString("\n")

	if m.hasListing {
		b.WriteString(m.renderSection("results", m.listing))
	} else {
		now := m.clock.Now()
		today := fmt.Sprintf("today, %s", now.Format(dayHeaderLayout))
		b.WriteString(m.renderSection(today, m.engine.ItemsOn(now)))

		from := startOfDay(now).AddDate(0, 0, 1)
		to := from.AddDate(0, 0, daysAhead).Add(-time.Nanosecond)
		b.WriteString(m.renderSection(
			fmt.Sprintf("next %d days", daysAhead),
			m.engine.ItemsBetween(from, to),
		))
	}

	if m.feedback != "" {
		style := m.styles.FeedbackOK
		if m.feedbackErr {
			style = m.styles.FeedbackErr
		}
		b.WriteString(style.Render(m.feedback))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// renderSection renders one titled item panel.
func (m Model) renderSection(title string, items []domain.Item) string {
	var b strings.Builder
	b.WriteString(m.styles.SectionTitle.Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(m.styles.SectionEmpty.Render("  nothing here"))
		b.WriteString("\n\n")
		return b.String()
	}

	for _, it := range items {
		b.WriteString("  ")
		b.WriteString(m.renderItem(it))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderItem renders a single item line.
func (m Model) renderItem(it domain.Item) string {
	parts := []string{
		m.typeGlyph(it.Type),
		m.styles.ItemID.Render(fmt.Sprintf("%d", it.ID)),
		m.styles.ItemTitle.Render(it.Title),
	}
	if when := itemWhen(it); when != "" {
		parts = append(parts, m.styles.ItemWhen.Render(when))
	}
	if len(it.Tags) > 0 {
		parts = append(parts, m.styles.ItemTag.Render("#"+strings.Join(it.Tags, " #")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

func (m Model) typeGlyph(t domain.ItemType) string {
	switch t {
	case domain.TypeEvent:
		return m.styles.TypeStyle(Colors.Event).Render("○")
	case domain.TypeTask:
		return m.styles.TypeStyle(Colors.Task).Render("•")
	default:
		return m.styles.TypeStyle(Colors.Plan).Render("–")
	}
}

// itemWhen renders the item's schedule for a panel line.
func itemWhen(it domain.Item) string {
	switch it.Type {
	case domain.TypeEvent:
		if domain.SameDay(it.Start, it.End) {
			return fmt.Sprintf("%s %s-%s",
				it.Start.Format(dayHeaderLayout),
				it.Start.Format(clockLayout),
				it.End.Format(clockLayout))
		}
		return fmt.Sprintf("%s %s to %s %s",
			it.Start.Format(dayHeaderLayout), it.Start.Format(clockLayout),
			it.End.Format(dayHeaderLayout), it.End.Format(clockLayout))
	case domain.TypeTask:
		return fmt.Sprintf("by %s %s", it.Due.Format(dayHeaderLayout), it.Due.Format(clockLayout))
	default:
		return ""
	}
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
