package boardui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/internal/config"
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/ext"
	"github.com/nor-os/plugboard/pkg/flow"
	"github.com/nor-os/plugboard/pkg/graph"
	"github.com/nor-os/plugboard/pkg/view"
)

// handle is the opaque element identity the view registry hands out;
// pointer identity distinguishes views, seq only aids debugging.
type handle struct{ seq int }

// Core holds the editing session: the graph model plus the viewport,
// view registry, connection flow and selection wired around it. Model
// carries it by pointer so bubbletea's value-copied updates all mutate
// the same session.
type Core struct {
	Cfg    *config.Config
	Editor *graph.Editor
	Area   *area.Area
	Reg    *view.Registry
	Flow   *flow.ClassicFlow
	Sel    *ext.Selector
	Pseudo *view.Pseudoconnection

	Title string
	Path  string

	// Last pseudoconnection payload, cached off the render pipe so the
	// canvas layer can draw the in-flight wire.
	preview   *view.Preview
	previewEl view.Element

	status  string
	nodeSeq int
}

// Model is the main application state.
type Model struct {
	core *Core

	Width, Height  int
	MouseX, MouseY int

	// Edit modal state
	EditOpen   bool
	EditNodeID string
	EditLabel  textinput.Model
}

// NewModel builds an editing session from a board file. path is where
// [w] writes the board back; empty disables saving.
func NewModel(cfg *config.Config, f *board.File, path string) (Model, error) {
	ed, positions, err := f.Build()
	if err != nil {
		return Model{}, err
	}

	ar := area.New(area.NewWindow(), cfg.Zoom.Intensity)
	seq := 0
	reg := view.NewRegistry(ed, ar, func() view.Element {
		seq++
		return &handle{seq: seq}
	})
	for id, p := range positions {
		placeNodeView(reg, ed.Node(id), p)
	}

	core := &Core{
		Cfg:     cfg,
		Editor:  ed,
		Area:    ar,
		Reg:     reg,
		Title:   f.Title,
		Path:    path,
		nodeSeq: len(positions),
	}

	core.Pseudo = view.NewPseudoconnection(reg)
	core.Flow = flow.NewClassicFlow(ed, flow.ClassicParams{
		OnDrop: func(ev flow.DropEvent) {
			core.Pseudo.Unmount()
			switch {
			case ev.Created:
				core.status = "connected"
			case ev.Socket != nil:
				core.status = "incompatible sockets"
			default:
				core.status = ""
			}
		},
	})

	reg.Render.Listen(func(ev view.RenderEvent) {
		if ev.Preview != nil {
			core.preview = ev.Preview
			core.previewEl = ev.Element
		}
	})
	reg.Unmount.Listen(func(ev view.UnmountEvent) {
		if core.previewEl != nil && ev.Element == core.previewEl {
			core.preview = nil
			core.previewEl = nil
		}
	})

	core.Sel = ext.NewSelector()
	ext.SelectableNodes(reg, core.Sel, ext.SelectableNodesParams{})

	restrict := ext.RestrictorParams{
		Scaling: ext.StaticScaling(cfg.Zoom.Min, cfg.Zoom.Max),
	}
	if cfg.Board.PanClamped() {
		restrict.Translation = ext.StaticTranslation(
			cfg.Board.Left, cfg.Board.Top, cfg.Board.Right, cfg.Board.Bottom)
	}
	ext.Restrictor(ar, restrict)

	if cfg.Grid.Size > 0 {
		ext.SnapGrid(reg, ext.SnapGridParams{
			Size:    cfg.Grid.Size,
			Dynamic: cfg.Grid.Dynamic,
		})
	}

	return Model{core: core}, nil
}

// placeNodeView sizes a node view from its port list and label and puts
// it at p in content space.
func placeNodeView(reg *view.Registry, n *graph.Node, p area.Point) {
	v := reg.NodeView(n.ID)
	if v == nil {
		return
	}
	box := board.BoxFor(n, p)
	v.Position = p
	v.Width = float64(box.Dx())
	v.Height = float64(box.Dy())
}

// positions snapshots node positions for save and export.
func (c *Core) positions() map[string]area.Point {
	out := make(map[string]area.Point, len(c.Reg.NodeViews()))
	for _, v := range c.Reg.NodeViews() {
		out[v.Node().ID] = v.Position
	}
	return out
}

// Core exposes the session for tests.
func (m Model) Core() *Core { return m.core }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
