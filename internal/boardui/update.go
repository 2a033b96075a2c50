package boardui

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/BurntSushi/toml"
	"github.com/atotto/clipboard"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/ext"
	"github.com/nor-os/plugboard/pkg/graph"
	"github.com/nor-os/plugboard/pkg/view"
)

const panStep = 3

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		r := m.canvasRect()
		m.core.Area.SetViewport(float64(r.Dx()), float64(r.Dy()))

	case tea.KeyMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.EditOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.core
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Viewport panning
	case "up":
		c.pan(0, panStep)
	case "down":
		c.pan(0, -panStep)
	case "left":
		c.pan(panStep, 0)
	case "right":
		c.pan(-panStep, 0)

	// Zoom at viewport center
	case "+", "=":
		c.zoomStep(1)
	case "-", "_":
		c.zoomStep(-1)

	// Fit all nodes into the viewport
	case "f":
		ext.ZoomAt(c.Reg, c.Reg.NodeViews(), ext.ZoomAtParams{})
		c.status = "fit to view"

	case "a":
		m.addNode()

	case "e":
		return m.openEditModal()

	case "d", "delete", "backspace":
		c.deleteSelected()

	case "y":
		c.yankSelected()

	case "w":
		c.writeBoard()

	// Escape — cancel in-flight connection and clear selection
	case "esc", "escape":
		if !c.Flow.Idle() {
			c.Flow.Drop()
		}
		c.Sel.UnselectAll()
		c.status = ""
	}

	return m, nil
}

// canvasRect computes the canvas region rectangle for coordinate
// transforms. Must match the layout in View.
func (m Model) canvasRect() image.Rectangle {
	topH := 1
	bottomH := 1
	rightW := panelWidth
	return image.Rect(0, topH, m.Width-rightW, m.Height-bottomH)
}

// pan shifts the viewport by a fixed step in device cells.
func (c *Core) pan(dx, dy float64) {
	tr := c.Area.Transform()
	c.Area.Translate(tr.X+dx, tr.Y+dy)
}

// zoomStep zooms around the viewport center, mirroring what the wheel
// handler does at the pointer position.
func (c *Core) zoomStep(dir float64) {
	w, h := c.Area.Viewport()
	delta := dir * c.Cfg.Zoom.Intensity * 2
	k := c.Area.Transform().K
	c.Area.Zoom(k*(1+delta), -(w/2)*delta, -(h/2)*delta, "keyboard")
}

// addNode inserts a fresh one-in-one-out node at the viewport center.
func (m *Model) addNode() {
	c := m.core
	for {
		c.nodeSeq++
		id := fmt.Sprintf("node-%d", c.nodeSeq)
		n := graph.NewNode(id, "NEW").
			AddInput("in", "in", false).
			AddOutput("out", "out", false)
		if !c.Editor.AddNode(n) {
			continue // id taken by the board file, try the next
		}
		w, h := c.Area.Viewport()
		center := c.Area.ContentPoint(area.Pt(w/2, h/2))
		placeNodeView(c.Reg, n, center)
		c.Reg.Update(view.RenderNode, id)
		c.status = "added " + id
		return
	}
}

// deleteSelected removes every selected node, connections included.
func (c *Core) deleteSelected() {
	ents := c.Sel.Entities()
	if len(ents) == 0 {
		c.status = "nothing selected"
		return
	}
	removed := 0
	for _, e := range ents {
		if e.Label != "node" {
			continue
		}
		c.Editor.RemoveNode(e.ID)
		removed++
	}
	c.Sel.UnselectAll()
	c.status = fmt.Sprintf("deleted %d node(s)", removed)
}

// yankSelected copies the selected nodes (and the connections between
// them) to the system clipboard as a board fragment.
func (c *Core) yankSelected() {
	ents := c.Sel.Entities()
	if len(ents) == 0 {
		c.status = "nothing selected"
		return
	}

	full := board.Snapshot(c.Editor, c.positions(), "")
	keep := make(map[string]bool, len(ents))
	for _, e := range ents {
		if e.Label == "node" {
			keep[e.ID] = true
		}
	}

	frag := &board.File{}
	for _, ns := range full.Nodes {
		if keep[ns.ID] {
			frag.Nodes = append(frag.Nodes, ns)
		}
	}
	for _, cs := range full.Connections {
		if keep[cs.From] && keep[cs.To] {
			frag.Connections = append(frag.Connections, cs)
		}
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(frag); err != nil {
		c.status = "yank failed: " + err.Error()
		return
	}
	if err := clipboard.WriteAll(sb.String()); err != nil {
		c.status = "clipboard unavailable"
		return
	}
	c.status = fmt.Sprintf("yanked %d node(s)", len(frag.Nodes))
}

// writeBoard saves the current editor state back to the board file.
func (c *Core) writeBoard() {
	if c.Path == "" {
		c.status = "no board file to write"
		return
	}
	f := board.Snapshot(c.Editor, c.positions(), c.Title)
	if err := f.Save(c.Path); err != nil {
		c.status = "write failed: " + err.Error()
		return
	}
	c.status = "wrote " + c.Path
}
