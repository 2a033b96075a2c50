package boardui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/pkg/view"
)

// openEditModal opens the label editor for the selected node. With more
// than one node selected the first selection wins.
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	c := m.core
	ents := c.Sel.Entities()
	if len(ents) == 0 {
		c.status = "select a node to edit"
		return m, nil
	}
	node := c.Editor.Node(ents[0].ID)
	if node == nil {
		return m, nil
	}

	m.EditOpen = true
	m.EditNodeID = node.ID

	m.EditLabel = textinput.New()
	m.EditLabel.Prompt = ""
	m.EditLabel.CharLimit = 30
	m.EditLabel.SetValue(node.Label)

	cmd := m.EditLabel.Focus()
	return m, cmd
}

// handleEditKeys processes keys while the edit modal is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.core
	switch msg.String() {
	case "esc", "escape":
		m.EditOpen = false
		return m, nil

	case "enter":
		node := c.Editor.Node(m.EditNodeID)
		if node != nil {
			label := strings.TrimSpace(m.EditLabel.Value())
			if label != "" {
				node.Label = label
			}
			// The box is sized from the label, so re-measure and repaint.
			if v := c.Reg.NodeView(node.ID); v != nil {
				box := board.BoxFor(node, v.Position)
				v.Width = float64(box.Dx())
				v.Height = float64(box.Dy())
			}
			c.Reg.Update(view.RenderNode, node.ID)
		}
		m.EditOpen = false
		return m, nil

	default:
		var cmd tea.Cmd
		m.EditLabel, cmd = m.EditLabel.Update(msg)
		return m, cmd
	}
}

// buildEditModalLayer renders the edit modal as a centered Z=100 Layer.
func buildEditModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	node := m.core.Editor.Node(m.EditNodeID)
	if node == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(c("#00ffc8")).
		Background(c("#0a1510")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(c("#ddaa44")).
		Background(c("#0a1510"))

	hintStyle := lipgloss.NewStyle().
		Foreground(c("#336655")).
		Background(c("#0a1510")).
		Italic(true)

	lines := []string{
		titleStyle.Render("  ✏️  EDIT — " + node.ID),
		"",
		labelStyle.Render("▸ Label:"),
		"  " + m.EditLabel.View(),
		"",
		hintStyle.Render("  [enter] save  [esc] cancel"),
	}

	content := strings.Join(lines, "\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#00d4a0")).
		Background(c("#0a1510")).
		Width(44).
		Padding(1, 2)

	rendered := boxStyle.Render(content)

	renderedW := lipgloss.Width(rendered)
	renderedH := lipgloss.Height(rendered)
	cx := (screenW - renderedW) / 2
	cy := (screenH - renderedH) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}

	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("edit-modal")
}
