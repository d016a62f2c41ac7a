package spritebg

import "image"

// floodFill clears the backdrop by flooding inward from every border
// pixel. A popped pixel that is not light (all channels > 180) acts as a
// wall: it is left untouched and does not propagate. Light pixels are
// cleared and spread to their 8 neighbors whose total channel difference
// from the pixel's original color is below 60.
//
// The fill can bleed into light foreground connected to the border by a
// path of similar colors; that is inherent to the heuristic.
func floodFill(m *image.NRGBA) {
	w := m.Rect.Dx()
	h := m.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))

	for x := 0; x < w; x++ {
		queue = append(queue, x)          // top row
		queue = append(queue, (h-1)*w+x)  // bottom row
	}
	for y := 1; y < h-1; y++ {
		queue = append(queue, y*w)       // left column
		queue = append(queue, y*w+(w-1)) // right column
	}

	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		if visited[idx] {
			continue
		}
		visited[idx] = true

		x := idx % w
		y := idx / w
		off := pixOffset(m.Stride, x, y)
		sr, sg, sb := m.Pix[off], m.Pix[off+1], m.Pix[off+2]
		if !(sr > 180 && sg > 180 && sb > 180) {
			continue // wall
		}
		clearPixel(m.Pix, off)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				nIdx := ny*w + nx
				if visited[nIdx] {
					continue
				}
				nOff := pixOffset(m.Stride, nx, ny)
				diff := absDiff(sr, m.Pix[nOff]) + absDiff(sg, m.Pix[nOff+1]) + absDiff(sb, m.Pix[nOff+2])
				if diff < 60 {
					queue = append(queue, nIdx)
				}
			}
		}
	}
}
