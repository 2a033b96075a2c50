package boardui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/nor-os/plugboard/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette — CRT green terminal aesthetic.
var (
	colorBG = c("#080e0b")

	selColor     = c("#00ffee")
	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
)

// cellbuf style keys for the canvas layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleWire
	stylePreview
	styleNode
	styleNodeSel
	stylePort
	styleSocket
	styleSocketOn
	styleSocketHot
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:        lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	styleGrid:      lipgloss.NewStyle().Foreground(c("#0e2e20")).Background(colorBG),
	styleWire:      lipgloss.NewStyle().Foreground(c("#00d4a0")).Background(colorBG),
	stylePreview:   lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(colorBG).Bold(true),
	styleNode:      lipgloss.NewStyle().Foreground(c("#00ffc8")).Background(colorBG),
	styleNodeSel:   lipgloss.NewStyle().Foreground(selColor).Background(c("#0a1a15")).Bold(true),
	stylePort:      lipgloss.NewStyle().Foreground(c("#ddaa44")).Background(colorBG),
	styleSocket:    lipgloss.NewStyle().Foreground(c("#1a6a4a")).Background(colorBG),
	styleSocketOn:  lipgloss.NewStyle().Foreground(c("#44ff88")).Background(colorBG),
	styleSocketHot: lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(colorBG).Bold(true),
}
