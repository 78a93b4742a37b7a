package box

// DistancePointSquared returns the squared Euclidean distance between point
// and the nearest pixel of b, or 0 if point lies inside b.
func (b Box) DistancePointSquared(point []int32) int64 {
	var result int64
	for i, p := range point {
		bs := int64(b.position[i])
		be := bs + int64(b.size[i])
		var r int64
		switch pp := int64(p); {
		case pp < bs:
			r = bs - pp
		case pp >= be:
			r = pp - be + 1
		default:
			continue
		}
		result += r * r
	}
	return result
}

// Center returns the center pixel of b. When the exact center falls between
// two pixels, the one closer to the reading-order origin implied by
// orientation is chosen.
func (b Box) Center(orientation []int32) []int32 {
	result := make([]int32, len(orientation))
	for i, o := range orientation {
		result[i] = CenterOffset1D(b.size[i]-1, o) + b.position[i]
	}
	return result
}

// ClosestBoxes returns the indices of the boxes nearest to point. Boxes at
// equal distance are ranked by their distance to the origin implied by
// orientation; boxes that still tie are all returned. With a nil
// orientation every box at minimal distance is returned.
func ClosestBoxes(point []int32, boxes []Box, orientation []int32) []int {
	var result []int
	var minDist int64 = -1

	for i, b := range boxes {
		const (
			keep = iota
			appendIdx
			replace
		)
		action := keep
		dist := b.DistancePointSquared(point)

		switch {
		case len(result) == 0 || dist < minDist:
			action = replace
		case dist == minDist:
			if orientation == nil {
				action = appendIdx
				break
			}
			for _, r := range result {
				c := compareDistanceToOrigin(b, boxes[r], orientation)
				if c < 0 {
					action = replace
					break
				}
				if c == 0 {
					action = appendIdx
				}
			}
		}

		switch action {
		case appendIdx:
			result = append(result, i)
		case replace:
			minDist = dist
			result = []int{i}
		}
	}
	return result
}

// compareDistanceToOrigin is negative, zero or positive when b1 is closer
// to, as close to, or farther from the origin than b2. Axes are compared in
// order and axes with a zero orientation are skipped.
func compareDistanceToOrigin(b1, b2 Box, orientation []int32) int32 {
	for i, o := range orientation {
		if o == 0 {
			continue
		}
		e1 := b1.position[i]
		e2 := b2.position[i]
		if o < 0 {
			e1 = b1.size[i] - e1
			e2 = b2.size[i] - e2
		}
		if d := e1 - e2; d != 0 {
			return d
		}
	}
	return 0
}

// CurrentBoxIndex returns the index of the box closest to the center of b,
// or -1 if boxes is empty.
func (b Box) CurrentBoxIndex(orientation []int32, boxes []Box) int {
	closest := ClosestBoxes(b.Center(orientation), boxes, orientation)
	if len(closest) == 0 {
		return -1
	}
	return closest[0]
}
