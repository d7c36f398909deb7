package report

import (
	"html"
	"strings"
	"unicode/utf8"

	"supply-chain-insights/internal/features/charts"
)

const captionMore = "\n…"

// Caption summarizes a chart as Telegram HTML: bold title, then one line per
// category listing every series label. With maxRunes > 0 the escaped result
// never exceeds maxRunes; whole category lines are dropped from the end and
// replaced by an ellipsis line, so no tag or entity is ever cut.
func Caption(c *charts.GroupedBarChart, maxRunes int) string {
	var sb strings.Builder
	sb.WriteString(captionTitle(c.Title, maxRunes))
	used := utf8.RuneCountInString(sb.String())

	for i, category := range c.Categories {
		line := captionLine(c, i, category)
		n := utf8.RuneCountInString(line)
		if maxRunes > 0 {
			rest := 0
			if i < len(c.Categories)-1 {
				rest = utf8.RuneCountInString(captionMore)
			}
			if used+n+rest > maxRunes {
				if used+utf8.RuneCountInString(captionMore) <= maxRunes {
					sb.WriteString(captionMore)
				}
				break
			}
		}
		sb.WriteString(line)
		used += n
	}
	return sb.String()
}

// captionTitle escapes the title, shortening the plain text until it fits.
func captionTitle(title string, maxRunes int) string {
	runes := []rune(title)
	for {
		head := "<b>" + html.EscapeString(string(runes)) + "</b>\n"
		if maxRunes <= 0 || utf8.RuneCountInString(head) <= maxRunes || len(runes) == 0 {
			return head
		}
		runes = runes[:len(runes)-1]
	}
}

func captionLine(c *charts.GroupedBarChart, i int, category string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(html.EscapeString(category))
	sb.WriteString(": ")
	for j, s := range c.Series {
		if j > 0 {
			sb.WriteString(", ")
		}
		label := PercentLabel(s.Values[i])
		if s.Labels != nil {
			label = s.Labels[i]
		}
		sb.WriteString(html.EscapeString(s.Name))
		sb.WriteString(" ")
		sb.WriteString(html.EscapeString(label))
	}
	return sb.String()
}
