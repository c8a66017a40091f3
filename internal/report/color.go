package report

import "hash/fnv"

// Palette is the fixed set of chart colors. Categories map onto it by
// name hash, so a category keeps its color across renders and screens
// without storing a choice. Distinct names may collide; that is fine.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E9", "#F8C471", "#D5A6BD",
}

// PaletteIndex returns the stable palette slot for a category name.
func PaletteIndex(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum32() % uint32(len(Palette)))
}

// ColorFor returns the chart color for a category name.
func ColorFor(name string) string {
	return Palette[PaletteIndex(name)]
}
