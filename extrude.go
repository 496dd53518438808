package logotype

// depthFactor returns the darkening factor for extrusion layer i of depth.
// It grows strictly as i decreases: the farthest layer (i = depth) is the
// darkest at 0.2, the nearest (i = 1) approaches 0.7.
func depthFactor(i, depth int) float64 {
	return 0.7 - 0.5*float64(i)/float64(depth)
}

// ExtrusionLayer synthesizes a pseudo-3D depth effect for the glyph coverage
// in mask: exactly depth copies of the coverage, stamped at diagonal offsets
// (i, i) for i from depth down to 1, each tinted with base darkened by
// depthFactor. The farthest, most-offset copy is drawn first so nearer
// layers overpaint it, producing a receding shadow stack.
//
// The returned layer is canvas-sized and composites between the background
// and the main text fill. Depth below 1 is clamped to 1.
func ExtrusionLayer(mask *Mask, base Color, depth int) *Pixmap {
	if depth < 1 {
		depth = 1
	}
	layer := NewPixmap(mask.Width(), mask.Height())
	for i := depth; i >= 1; i-- {
		stampOver(layer, mask, base.Scale(depthFactor(i, depth)), i, i)
	}
	return layer
}
