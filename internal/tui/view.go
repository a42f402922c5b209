package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/signboard/internal/rotation"
)

func (b *BoardPage) render(width, height int) string {
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 30
	}

	header := b.renderHeader(width)
	bar := b.renderProgress(width)
	footer := b.renderFooter(width)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(bar) - lipgloss.Height(footer)
	bodyHeight = max(bodyHeight, 3)

	var body string
	if b.showImpressions {
		body = b.renderImpressions(width, bodyHeight)
	} else {
		body = b.renderSlide(width)
	}
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, body, footer)
}

func (b *BoardPage) renderHeader(width int) string {
	left := headerStyle.Render(titleStyle.Background(ColorNavy).Render(b.rt.title) + "  Digital Notice Board")
	clock := clockStyle.Render(b.now.Format("Mon, 02 Jan 2006  15:04:05"))
	gap := width - lipgloss.Width(left) - lipgloss.Width(clock)
	if gap < 0 {
		return left
	}
	fill := lipgloss.NewStyle().Background(ColorNavy).Render(strings.Repeat(" ", gap))
	return left + fill + clock
}

// renderProgress restarts from empty on every epoch since the timer is
// re-armed on each transition.
func (b *BoardPage) renderProgress(width int) string {
	b.progress.Width = max(width, 10)
	return b.progress.ViewAs(b.rt.timer.Progress(b.now))
}

func (b *BoardPage) renderFooter(width int) string {
	current := b.rt.controller.Section()
	var dots []string
	for _, s := range rotation.Sections() {
		if s == current {
			dots = append(dots, labelStyle.Render("● "+s.Title()))
		} else {
			dots = append(dots, mutedStyle.Render("○ "+s.Title()))
		}
	}
	left := strings.Join(dots, "  ")

	var help []string
	for _, k := range b.rt.keys.boardHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	right := helpStyle.Render(strings.Join(help, " • "))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (b *BoardPage) renderSlide(width int) string {
	var slide string
	switch b.rt.controller.Section() {
	case rotation.News:
		slide = b.renderNews(width)
	case rotation.Award:
		slide = b.renderAwards(width)
	case rotation.Event:
		slide = b.renderEvent(width)
	case rotation.Promo:
		slide = b.renderPromo(width)
	}
	return slideStyle.Width(width).Render(slide)
}

func emptySlide(what string) string {
	return mutedStyle.Render(fmt.Sprintf("No %s to show", what))
}
