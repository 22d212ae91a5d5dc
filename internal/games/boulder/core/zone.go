package core

// Zone is one screenful of the map: a rectangular region of tile-space sized
// to the canvas handed in at grid construction. The zone table is computed
// once at load time and is immutable; it is used only to decide which screen
// region must be redrawn after a tick. When the player crosses into a new
// zone the whole new zone is redrawn, the classic screen-flick scroll of the
// genre.
type Zone struct {
	Index int
	X, Y  int // top-left tile coordinate
	W, H  int // extent in tiles, clipped to the map
}

// ZonesFromMap partitions a width x height tile map into zones of at most
// canvasW x canvasH tiles, row-major. Zones at the right and bottom edges are
// clipped to the map. A non-positive canvas yields a single zone covering the
// whole map.
func ZonesFromMap(width, height, canvasW, canvasH int) []Zone {
	if canvasW <= 0 || canvasW > width {
		canvasW = width
	}
	if canvasH <= 0 || canvasH > height {
		canvasH = height
	}

	var zones []Zone
	index := 0
	for y := 0; y < height; y += canvasH {
		for x := 0; x < width; x += canvasW {
			w := canvasW
			if x+w > width {
				w = width - x
			}
			h := canvasH
			if y+h > height {
				h = height - y
			}
			zones = append(zones, Zone{Index: index, X: x, Y: y, W: w, H: h})
			index++
		}
	}
	return zones
}

// Contains returns true if the tile coordinate lies inside this zone.
func (z Zone) Contains(c Coord) bool {
	return c.X >= z.X && c.X < z.X+z.W && c.Y >= z.Y && c.Y < z.Y+z.H
}

// CurrentZone returns the zone containing the given tile coordinate.
func CurrentZone(c Coord, zones []Zone) (Zone, bool) {
	for _, z := range zones {
		if z.Contains(c) {
			return z, true
		}
	}
	return Zone{}, false
}
