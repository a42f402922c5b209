package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tinytelemetry/signboard/internal/feed"
	"github.com/tinytelemetry/signboard/internal/model"
)

// categoryColor picks the news badge color.
func categoryColor(category string) lipgloss.Color {
	switch strings.ToLower(category) {
	case "sports":
		return ColorRedO
	case "technology":
		return ColorCyan
	case "academic":
		return ColorGreenD
	default:
		return ColorOrange
	}
}

// awardTheme maps achievement text to a card color and label.
func awardTheme(position string) (lipgloss.Color, string) {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "1st"), strings.Contains(p, "winner"), strings.Contains(p, "first"):
		return ColorAmber, "WINNER"
	case strings.Contains(p, "2nd"), strings.Contains(p, "runner"), strings.Contains(p, "second"):
		return ColorSlate, "RUNNER UP"
	case strings.Contains(p, "3rd"), strings.Contains(p, "third"):
		return ColorBronze, "KEEP IT UP"
	default:
		return ColorViolet, "PARTICIPATION"
	}
}

func (b *BoardPage) renderNews(width int) string {
	item, idx, n, ok := b.rt.controller.CurrentNews()
	if !ok {
		return emptySlide("news")
	}
	textWidth := max(width-8, 20)

	category := item.Category
	if category == "" {
		category = "General"
	}
	meta := []string{badge(strings.ToUpper(category), categoryColor(item.Category))}
	if !item.Published.IsZero() {
		meta = append(meta, mutedStyle.Render(item.Published.Format("02 Jan 2006")+" • "+humanize.Time(item.Published)))
	}

	lines := []string{
		strings.Join(meta, "  "),
		"",
		titleStyle.Width(textWidth).Render(item.Headline),
	}
	if item.Description != "" {
		lines = append(lines, "", bodyStyle.Width(textWidth).Render(item.Description))
	}
	if item.Impact != "" {
		lines = append(lines, "", labelStyle.Render("STUDENT IMPACT"), bodyStyle.Width(textWidth).Render(item.Impact))
	}

	view := "Generated View"
	if b.media.OK() {
		view = "Visual Context"
	}
	lines = append(lines, "",
		mutedStyle.Render(fmt.Sprintf("%s • ID: %d / %d", view, idx+1, n)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (b *BoardPage) renderAwards(width int) string {
	cards, start, n := b.rt.controller.AwardWindow()
	if n == 0 {
		return emptySlide("achievements")
	}
	cols := len(cards)
	cardWidth := max((width-4)/cols-2, 18)

	rendered := make([]string, 0, cols)
	for _, a := range cards {
		rendered = append(rendered, renderAwardCard(a, cardWidth))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	caption := mutedStyle.Render(fmt.Sprintf("Showing Records %d to %d of %d", start+1, start+len(cards), n))
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Achievements & Awards"),
		"",
		row,
		"",
		caption,
	)
}

func renderAwardCard(a model.Achievement, width int) string {
	color, label := awardTheme(a.Position)
	lines := []string{
		badge(label, color),
		"",
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(a.StudentName),
	}
	year := ""
	if a.Year != "" {
		year = "Year " + a.Year
	}
	if meta := strings.Join(nonEmpty(year, a.Section), " • "); meta != "" {
		lines = append(lines, mutedStyle.Render(meta))
	}
	if a.Position != "" {
		lines = append(lines, "", bodyStyle.Bold(true).Render(a.Position))
	}
	if a.EventTitle != "" {
		lines = append(lines, bodyStyle.Render(a.EventTitle))
	}
	if a.Organization != "" {
		lines = append(lines, mutedStyle.Render("@ "+a.Organization))
	}
	if a.Description != "" {
		lines = append(lines, "", mutedStyle.Italic(true).Render(a.Description))
	}
	if a.MediaURL != "" {
		lines = append(lines, helpStyle.Render("certificate: "+a.MediaURL))
	}
	return cardStyle.BorderForeground(color).Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (b *BoardPage) renderEvent(width int) string {
	item, idx, n, ok := b.rt.controller.CurrentEvent()
	if !ok {
		return emptySlide("events")
	}
	kind := "POSTER"
	if item.Kind == model.MediaVideo {
		kind = "VIDEO"
	}

	var media string
	switch {
	case b.media.OK():
		media = bodyStyle.Render(b.media.URL)
		if b.media.Stage == feed.StageAlternate {
			media += mutedStyle.Render("  (alternate)")
		}
	case b.media.Stage == feed.StageUnavailable:
		media = errorStyle.Render(feed.MediaUnavailable)
	default:
		media = mutedStyle.Render("Loading media...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Campus Events"),
		"",
		badge(kind, ColorNavy)+"  "+mutedStyle.Render(item.ContentType),
		"",
		cardStyle.Width(max(width-8, 20)).Render(media),
		"",
		mutedStyle.Render(fmt.Sprintf("%d / %d", idx+1, n)),
	)
}

func (b *BoardPage) renderPromo(width int) string {
	p, _, _, ok := b.rt.controller.CurrentPromo()
	if !ok {
		return emptySlide("opportunities")
	}
	textWidth := max(width-8, 20)

	eligibility := make([]string, 0, len(p.Eligibility))
	for _, e := range p.Eligibility {
		eligibility = append(eligibility, "  ✓ "+e)
	}

	lines := []string{
		helpStyle.Render("DEMO DATA DISPLAY"),
		"",
		titleStyle.Render(p.Company) + "  " + mutedStyle.Render(p.Type),
		bodyStyle.Bold(true).Render(p.Role),
	}
	if p.TargetAudience != "" {
		lines = append(lines, mutedStyle.Render("For: "+p.TargetAudience))
	}
	if p.Stipend != "" {
		lines = append(lines, "", readyStyle.Render(p.Stipend))
	}
	if p.Description != "" {
		lines = append(lines, "", bodyStyle.Width(textWidth).Render(p.Description))
	}
	if len(eligibility) > 0 {
		lines = append(lines, "", labelStyle.Render("ELIGIBILITY"))
		lines = append(lines, eligibility...)
	}
	if p.Deadline != "" {
		lines = append(lines, "", errorStyle.Render("Application Deadline: "+p.Deadline))
	}
	if p.Link != "" {
		lines = append(lines, mutedStyle.Render("Apply: "+p.Link))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func nonEmpty(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
