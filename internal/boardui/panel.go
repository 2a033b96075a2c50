package boardui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const panelWidth = 30

// panelBG is the panel background color, slightly lighter than the
// canvas for visible distinction.
var panelBG = c("#1a2a20")

// Panel styles — all share the same background for consistency.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	// panelLineStyle wraps padding with consistent background.
	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads and renders a line with consistent background to
// the given width.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	pad := width - vis
	if pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// padToHeight pads the line list with empty lines and right-pads each
// to the panel width.
func padToHeight(lines []string, width, height int) string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return strings.Join(lines, "\n")
}

// buildInfoPanelLayer renders the selected-node section.
func buildInfoPanelLayer(c *Core, x, y, width, height int) *lipgloss.Layer {
	var lines []string
	lines = append(lines, panelTitleStyle.Render("▣ NODE"))
	lines = append(lines, panelDimStyle.Render(strings.Repeat("─", width-2)))

	ents := c.Sel.Entities()
	if len(ents) == 0 {
		lines = append(lines, panelDimStyle.Render("  (none selected)"))
	}
	for _, e := range ents {
		n := c.Editor.Node(e.ID)
		v := c.Reg.NodeView(e.ID)
		if n == nil || v == nil {
			continue
		}
		lines = append(lines,
			panelKeyStyle.Render("  "+n.ID)+
				panelDimStyle.Render(" = ")+
				panelValStyle.Render(n.Label))
		lines = append(lines, panelDimStyle.Render(
			fmt.Sprintf("    at (%.0f,%.0f)", v.Position.X, v.Position.Y)))
		for _, p := range n.Inputs() {
			lines = append(lines, panelTextStyle.Render(
				fmt.Sprintf("    ◂ %s (%d)", p.Key, len(c.Editor.ConnectionsTo(n.ID, p.Key)))))
		}
		for _, p := range n.Outputs() {
			lines = append(lines, panelTextStyle.Render(
				fmt.Sprintf("    ▸ %s (%d)", p.Key, len(c.Editor.ConnectionsFrom(n.ID, p.Key)))))
		}
	}

	return lipgloss.NewLayer(padToHeight(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-info")
}

// buildHelpPanelLayer renders the static help section.
func buildHelpPanelLayer(x, y, width, height int) *lipgloss.Layer {
	helpLines := []string{
		panelTitleStyle.Render("❓ HELP"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
		panelTextStyle.Render("  click=select drag=move"),
		panelTextStyle.Render("  drag socket ● to connect"),
		panelTextStyle.Render("  wheel: zoom  +/-: zoom"),
		panelTextStyle.Render("  [a]Add [e]Edit [d]Delete"),
		panelTextStyle.Render("  [y]Yank [w]Write [f]Fit"),
		panelTextStyle.Render("  Arrows: pan canvas"),
		panelTextStyle.Render("  [esc] cancel  [q] quit"),
	}
	return lipgloss.NewLayer(padToHeight(helpLines, width, height)).
		X(x).Y(y).Z(1).ID("panel-help")
}

// buildSeparatorLayer creates a vertical separator line.
func buildSeparatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(x).Y(y).Z(1).ID("separator")
}
