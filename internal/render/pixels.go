package render

import "image/color"

// Clear is used for cell codes beyond the palette when none is supplied.
var Clear = color.RGBA{}

// fillPaletteRGBA converts cell codes into RGBA pixels using a palette. Codes
// past the end of the palette use its last entry; an empty palette clears the
// buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			setPixel(buf, i, Clear)
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		setPixel(buf, i, palette[idx])
	}
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
