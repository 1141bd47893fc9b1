package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/twich/internal/domain/entity"
)

// VerdictBadge renders BLOCKED or ALLOWED.
func (t *Theme) VerdictBadge(v entity.Verdict) string {
	if v.Blocked {
		return t.BadgeBlocked.Render("BLOCKED")
	}
	return t.BadgeAllowed.Render("ALLOWED")
}

// RenderVerdict renders one gatekeeper decision line.
func (t *Theme) RenderVerdict(rawURL string, v entity.Verdict) string {
	var b strings.Builder
	b.WriteString(t.VerdictBadge(v))
	b.WriteString(" ")
	b.WriteString(t.Normal.Render(rawURL))
	if v.Blocked && v.Rule != nil {
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  (%s → %d %s)",
			v.Rule.Pattern(), v.Response.StatusCode, v.Response.ReasonPhrase)))
	}
	return b.String()
}

// RulesTable renders block patterns and sanitizer selectors as one table.
func (t *Theme) RulesTable(block []*entity.BlockRule, sanitize []entity.SanitizeRule) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("#", "KIND", "RULE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Highlight.Padding(0, 1)
			}
			return t.Normal.Padding(0, 1)
		})

	n := 0
	for _, r := range block {
		n++
		tbl.Row(strconv.Itoa(n), "block", r.Pattern())
	}
	for _, r := range sanitize {
		n++
		tbl.Row(strconv.Itoa(n), "sanitize", r.Selector())
	}
	return tbl.String()
}
