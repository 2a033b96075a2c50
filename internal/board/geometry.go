package board

import (
	"image"
	"math"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

const minBoxWidth = 12

// BoxFor returns the cell rectangle a node's box occupies when its
// top-left corner sits at p. Width follows the label, height follows
// the longer port column; one border row above and below the ports.
func BoxFor(n *graph.Node, p area.Point) image.Rectangle {
	w := len([]rune(n.Label)) + 6
	if w < minBoxWidth {
		w = minBoxWidth
	}
	rows := len(n.Inputs())
	if o := len(n.Outputs()); o > rows {
		rows = o
	}
	if rows < 1 {
		rows = 1
	}
	h := rows + 2
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	return image.Rect(x, y, x+w, y+h)
}
