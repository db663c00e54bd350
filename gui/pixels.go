package gui

import "image/color"

// fillBinaryRGBA converts rows of cell states into RGBA pixels in buf,
// one pixel per cell.
func fillBinaryRGBA(buf []byte, rows [][]bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	i := 0
	for _, row := range rows {
		for _, alive := range row {
			base := i * 4
			i++
			if alive {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
