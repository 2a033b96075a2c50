package boardui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nor-os/plugboard/pkg/tealayout"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	c := m.core

	// Layout: toolbar(1) + footer(1) + panel(panelWidth) + canvas(remaining)
	layout := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()

	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	// Toolbar content
	title := c.Title
	if title == "" {
		title = "untitled board"
	}
	tbContent := fmt.Sprintf(
		" PLUGBOARD  │  %s  │  [a]dd [e]dit [d]elete [y]ank [w]rite [f]it  │  [q]uit",
		title,
	)
	layers = append(layers,
		tealayout.ToolbarLayer(tbContent, m.Width, tbStyle),
	)

	// Footer content
	tr := c.Area.Transform()
	ftContent := fmt.Sprintf(
		" Mouse: (%d,%d)  Zoom: %.2f  Pan: (%.0f,%.0f)  Sel: %d  Nodes: %d  %s",
		m.MouseX, m.MouseY, tr.K, tr.X, tr.Y, c.Sel.Count(), len(c.Editor.Nodes()), c.status,
	)
	layers = append(layers,
		tealayout.FooterLayer(ftContent, m.Width, m.Height-1, ftStyle),
	)

	// Board canvas (grid + wires + preview + node boxes at Z=0)
	layers = append(layers, buildCanvasLayer(c, canvasRegion.Rect))

	// Side panel
	pr := panelRegion.Rect
	pw := pr.Dx()
	ph := pr.Dy()
	if pw > 0 && ph > 0 {
		helpH := 10
		infoH := ph - helpH
		if infoH < 4 {
			infoH = 4
		}

		layers = append(layers, buildSeparatorLayer(pr.Min.X-1, pr.Min.Y, ph))
		layers = append(layers, tealayout.FillLayer(panelRegion, bgStyle, "panel-bg", 0))
		layers = append(layers, buildInfoPanelLayer(c, pr.Min.X+1, pr.Min.Y, pw-2, infoH))
		layers = append(layers, buildHelpPanelLayer(pr.Min.X+1, pr.Min.Y+infoH, pw-2, helpH))
	}

	// Edit modal on top of everything
	if m.EditOpen {
		if modal := buildEditModalLayer(m, m.Width, m.Height); modal != nil {
			layers = append(layers, modal)
		}
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
