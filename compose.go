package logotype

// CompositeOver composites src over dst in place using the standard "over"
// operator on straight alpha, pixel-wise. Layers must share dimensions;
// mismatched buffers leave dst untouched.
//
// The pipeline applies layers strictly back to front: background, then
// extrusion (3D only), then the masked text fill. The operator is
// associative in that order but not commutative; swapping layers changes
// the result wherever they overlap.
func CompositeOver(dst, src *Pixmap) {
	if dst.width != src.width || dst.height != src.height {
		return
	}
	for i := 0; i < len(dst.data); i += 4 {
		sa := src.data[i+3]
		if sa == 0 {
			continue
		}
		if sa == 255 {
			copy(dst.data[i:i+4], src.data[i:i+4])
			continue
		}
		dst.data[i+0], dst.data[i+1], dst.data[i+2], dst.data[i+3] = blendOver(
			dst.data[i+0], dst.data[i+1], dst.data[i+2], dst.data[i+3],
			src.data[i+0], src.data[i+1], src.data[i+2], sa,
		)
	}
}

// blendOver blends one straight-alpha pixel over another.
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
func blendOver(dr, dg, db, da, sr, sg, sb, sa uint8) (r, g, b, a uint8) {
	srcA := int(sa)
	invA := 255 - srcA
	dstA := int(da) * invA / 255

	outA := srcA + dstA
	if outA == 0 {
		return 0, 0, 0, 0
	}

	r = uint8((int(sr)*srcA + int(dr)*dstA) / outA)
	g = uint8((int(sg)*srcA + int(dg)*dstA) / outA)
	b = uint8((int(sb)*srcA + int(db)*dstA) / outA)
	return r, g, b, uint8(outA)
}

// stampOver blends a tinted copy of the mask onto dst at offset (dx, dy):
// every covered mask pixel is drawn at its coordinate shifted by the offset,
// using the coverage as source alpha. Pixels shifted off-canvas are clipped.
func stampOver(dst *Pixmap, m *Mask, c Color, dx, dy int) {
	for y := 0; y < m.height; y++ {
		ty := y + dy
		if ty < 0 || ty >= dst.height {
			continue
		}
		for x := 0; x < m.width; x++ {
			cov := m.data[y*m.width+x]
			if cov == 0 {
				continue
			}
			tx := x + dx
			if tx < 0 || tx >= dst.width {
				continue
			}
			i := (ty*dst.width + tx) * 4
			if cov == 255 {
				dst.data[i+0] = c.R
				dst.data[i+1] = c.G
				dst.data[i+2] = c.B
				dst.data[i+3] = 255
				continue
			}
			dst.data[i+0], dst.data[i+1], dst.data[i+2], dst.data[i+3] = blendOver(
				dst.data[i+0], dst.data[i+1], dst.data[i+2], dst.data[i+3],
				c.R, c.G, c.B, cov,
			)
		}
	}
}
