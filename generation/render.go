package generation

import (
	"bufio"
	"io"
	"iter"

	"dungeon-forge/components"
)

// Glyphs yields one character per cell in row-major order. The sequence
// reads the grid lazily and can be ranged over any number of times.
func Glyphs(mapComp *components.MapComponent) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for y := 0; y < mapComp.Height; y++ {
			for x := 0; x < mapComp.Width; x++ {
				if !yield(mapComp.Tiles[y][x].Glyph()) {
					return
				}
			}
		}
	}
}

// WriteText writes the grid as text, one row per line
func WriteText(w io.Writer, mapComp *components.MapComponent) error {
	bw := bufio.NewWriter(w)

	i := 0
	for glyph := range Glyphs(mapComp) {
		if _, err := bw.WriteRune(glyph); err != nil {
			return err
		}
		i++
		if i%mapComp.Width == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
