// ABOUTME: Two-cluster color partitioning used to fit many colors into one cell
// ABOUTME: Deterministic 2-medoid heuristic seeded by the most distant pair

package color

// Group splits colors into two clusters for a two-tone glyph.
//
// The pair (i, j), i < j, with the greatest distance seeds the clusters;
// the first such pair in scan order wins ties. Every color is then marked
// true when it lies at least as close to colors[j] as to colors[i]. The
// result is a cheap approximation, not an optimal partition. Permuting
// the input preserves which colors share a cluster, but the two labels
// can swap.
func Group[C any](colors []C, dist func(a, b C) float64) []bool {
	groups := make([]bool, len(colors))
	if len(colors) == 0 {
		return groups
	}

	var farthest float64
	seedA, seedB := 0, 0
	for i := range colors {
		for j := i + 1; j < len(colors); j++ {
			if d := dist(colors[i], colors[j]); d > farthest {
				farthest = d
				seedA, seedB = i, j
			}
		}
	}

	for i, c := range colors {
		groups[i] = dist(colors[seedA], c) >= dist(colors[seedB], c)
	}
	return groups
}

// GroupColors is Group specialised to terminal colors.
func GroupColors(colors []Color) []bool {
	return Group(colors, Distance)
}

// Split partitions colors by groups and returns the mixed color of the
// true cluster and of the false cluster.
func Split(colors []Color, groups []bool) (on, off Color) {
	var ons, offs []Color
	for i, c := range colors {
		if groups[i] {
			ons = append(ons, c)
		} else {
			offs = append(offs, c)
		}
	}
	return Mix(ons...), Mix(offs...)
}
