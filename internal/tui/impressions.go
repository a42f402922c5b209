package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/signboard/internal/rotation"
)

var sectionBarStyles = map[string]lipgloss.Style{
	rotation.News.String():  lipgloss.NewStyle().Foreground(ColorCyan),
	rotation.Award.String(): lipgloss.NewStyle().Foreground(ColorAmber),
	rotation.Event.String(): lipgloss.NewStyle().Foreground(ColorGreenD),
	rotation.Promo.String(): lipgloss.NewStyle().Foreground(ColorViolet),
}

// renderImpressions draws one bar per section from the play log.
func (b *BoardPage) renderImpressions(width, height int) string {
	title := titleStyle.Render("Impressions this session")
	switch {
	case b.rt.querier == nil:
		return lipgloss.JoinVertical(lipgloss.Left, title, "", helpStyle.Render("Play log disabled"))
	case b.impressionsErr != nil:
		return lipgloss.JoinVertical(lipgloss.Left, title, "", errorStyle.Render(b.impressionsErr.Error()))
	}

	counts := make(map[string]int64, len(b.impressions))
	var total int64
	for _, c := range b.impressions {
		counts[c.Section] = c.Count
		total += c.Count
	}
	if total == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", helpStyle.Render("No data available"))
	}

	chartHeight := max(height-6, 4)
	chartWidth := max(width-4, 20)
	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(2),
		barchart.WithBarWidth(max(chartWidth/8, 3)),
	)

	var legend []string
	for _, s := range rotation.Sections() {
		name := s.String()
		n := counts[name]
		bc.Push(barchart.BarData{
			Label: s.Title(),
			Values: []barchart.BarValue{
				{Name: name, Value: float64(n), Style: sectionBarStyles[name]},
			},
		})
		legend = append(legend, sectionBarStyles[name].Render("■")+" "+fmt.Sprintf("%s %d", s.Title(), n))
	}
	bc.Draw()

	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+mutedStyle.Render(fmt.Sprintf("total %d", total)),
		"",
		bc.View(),
		"",
		strings.Join(legend, "   "),
		helpStyle.Render("s to close"),
	)
}
