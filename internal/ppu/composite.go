package ppu

import "github.com/tobu-wr/CppGB/internal/types"

// compositeLine renders the current scanline (mem.LY) into the frame
// buffer, in three passes: background, window, sprites.
func (p *PPU) compositeLine() {
	ly := p.mem.LY
	if ly >= ScreenHeight {
		return
	}
	row := &p.frame[ly]
	var bgPriority [ScreenWidth]bool
	var bgIndex [ScreenWidth]uint8

	lcdc := p.mem.LCDC
	cgb := p.mem.Model == types.ModelCGB

	if lcdc&0x01 != 0 {
		p.compositeBackground(row, bgPriority[:], bgIndex[:], cgb)
	} else {
		for x := 0; x < ScreenWidth; x++ {
			row[x] = Pixel{}
		}
	}

	windowDrawn := false
	if lcdc&0x20 != 0 && p.mem.WY <= ly {
		windowDrawn = p.compositeWindow(row, bgPriority[:], bgIndex[:], cgb)
	}
	if windowDrawn {
		p.wly++
	}

	if lcdc&0x02 != 0 {
		p.compositeSprites(row, bgPriority[:], bgIndex[:], cgb)
	}
}

func tileDataAddr(lcdc uint8, code uint8) uint16 {
	if lcdc&0x10 != 0 {
		return 0x8000 + uint16(code)*16
	}
	return 0x9000 + uint16(int8(code))*16
}

// fetchPixel reads the 2-bit pixel at (col, row) within an 8x8 tile
// whose two bitplane bytes begin at dataAddr in display RAM bank
// bank, applying horizontal/vertical flip.
func (p *PPU) fetchPixel(dataAddr uint16, bank uint8, col, rowInTile int, hflip, vflip bool) uint8 {
	if vflip {
		rowInTile = 7 - rowInTile
	}
	lo := p.mem.VRAM[bank][dataAddr-0x8000+uint16(rowInTile)*2]
	hi := p.mem.VRAM[bank][dataAddr-0x8000+uint16(rowInTile)*2+1]
	bit := col
	if !hflip {
		bit = 7 - col
	}
	b := uint8(0)
	if lo&(1<<uint(bit)) != 0 {
		b |= 1
	}
	if hi&(1<<uint(bit)) != 0 {
		b |= 2
	}
	return b
}

func (p *PPU) dmgColor(palette uint8, index uint8) uint8 {
	return (palette >> (index * 2)) & 0x03
}

func (p *PPU) cgbBGColor(paletteNo, index uint8) [3]uint8 {
	base := int(paletteNo)*8 + int(index)*2
	lo := p.mem.BGPaletteRAM[base]
	hi := p.mem.BGPaletteRAM[base+1]
	return unpackColor(lo, hi)
}

func (p *PPU) cgbOBJColor(paletteNo, index uint8) [3]uint8 {
	base := int(paletteNo)*8 + int(index)*2
	lo := p.mem.OBJPaletteRAM[base]
	hi := p.mem.OBJPaletteRAM[base+1]
	return unpackColor(lo, hi)
}

// unpackColor expands a little-endian 5-5-5 RGB entry into three
// left-justified 8-bit channel values.
func unpackColor(lo, hi uint8) [3]uint8 {
	v := uint16(lo) | uint16(hi)<<8
	r := uint8(v&0x1F) << 3
	g := uint8((v>>5)&0x1F) << 3
	b := uint8((v>>10)&0x1F) << 3
	return [3]uint8{r, g, b}
}

func (p *PPU) compositeBackground(row *[ScreenWidth]Pixel, bgPriority []bool, bgIndex []uint8, cgb bool) {
	lcdc := p.mem.LCDC
	mapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		mapBase = 0x9C00
	}
	scy, scx, ly := p.mem.SCY, p.mem.SCX, p.mem.LY

	for x := 0; x < ScreenWidth; x++ {
		xbg := (uint8(x) + scx)
		ybg := ly + scy
		cellRow := uint16(ybg) / 8
		cellCol := uint16(xbg) / 8
		mapAddr := mapBase + cellRow*32 + cellCol

		code := p.mem.VRAM[0][mapAddr-0x8000]
		var attr uint8
		if cgb {
			attr = p.mem.VRAM[1][mapAddr-0x8000]
		}

		bank := uint8(0)
		if attr&0x08 != 0 {
			bank = 1
		}
		hflip := attr&0x20 != 0
		vflip := attr&0x40 != 0
		palette := attr & 0x07

		dataAddr := tileDataAddr(lcdc, code)
		pixel := p.fetchPixel(dataAddr, bank, int(xbg%8), int(ybg%8), hflip, vflip)

		bgIndex[x] = pixel
		bgPriority[x] = attr&0x80 != 0

		row[x] = Pixel{
			DMGColor: p.dmgColor(p.mem.BGP, pixel),
			CGBColor: p.cgbBGColor(palette, pixel),
		}
	}
}

func (p *PPU) compositeWindow(row *[ScreenWidth]Pixel, bgPriority []bool, bgIndex []uint8, cgb bool) bool {
	lcdc := p.mem.LCDC
	wx := int(p.mem.WX) - 7
	if wx >= ScreenWidth {
		return false
	}
	start := wx
	if start < 0 {
		start = 0
	}

	mapBase := uint16(0x9800)
	if lcdc&0x40 != 0 {
		mapBase = 0x9C00
	}
	wly := p.wly
	drawn := false

	for x := start; x < ScreenWidth; x++ {
		wcol := x - wx
		if wcol < 0 {
			continue
		}
		drawn = true
		cellRow := uint16(wly) / 8
		cellCol := uint16(wcol) / 8
		mapAddr := mapBase + cellRow*32 + cellCol

		code := p.mem.VRAM[0][mapAddr-0x8000]
		var attr uint8
		if cgb {
			attr = p.mem.VRAM[1][mapAddr-0x8000]
		}
		bank := uint8(0)
		if attr&0x08 != 0 {
			bank = 1
		}
		hflip := attr&0x20 != 0
		vflip := attr&0x40 != 0
		palette := attr & 0x07

		dataAddr := tileDataAddr(lcdc, code)
		pixel := p.fetchPixel(dataAddr, bank, wcol%8, wly%8, hflip, vflip)

		bgIndex[x] = pixel
		bgPriority[x] = attr&0x80 != 0

		row[x] = Pixel{
			DMGColor: p.dmgColor(p.mem.BGP, pixel),
			CGBColor: p.cgbBGColor(palette, pixel),
		}
	}
	return drawn
}

type spriteEntry struct {
	x, y, tile, attr uint8
}

func (p *PPU) compositeSprites(row *[ScreenWidth]Pixel, bgPriority []bool, bgIndex []uint8, cgb bool) {
	lcdc := p.mem.LCDC
	height := 8
	if lcdc&0x04 != 0 {
		height = 16
	}
	ly := int(p.mem.LY)

	var collected []spriteEntry
	for i := 0; i < 40 && len(collected) < 10; i++ {
		base := i * 4
		y := int(p.mem.OAM[base]) - 16
		if ly < y || ly >= y+height {
			continue
		}
		collected = append(collected, spriteEntry{
			x:    p.mem.OAM[base+1],
			y:    p.mem.OAM[base],
			tile: p.mem.OAM[base+2],
			attr: p.mem.OAM[base+3],
		})
	}

	for i := len(collected) - 1; i >= 0; i-- {
		s := collected[i]
		code := s.tile
		if height == 16 {
			code &^= 0x01
		}
		x0 := int(s.x) - 8
		vflip := s.attr&0x40 != 0
		hflip := s.attr&0x20 != 0
		rowInSprite := ly - (int(s.y) - 16)
		if vflip {
			rowInSprite = height - 1 - rowInSprite
		}

		tileOffset := 0
		if height == 16 && rowInSprite >= 8 {
			tileOffset = 1
			rowInSprite -= 8
		}

		var palette uint8
		if !cgb {
			if s.attr&0x10 != 0 {
				palette = p.mem.OBP1
			} else {
				palette = p.mem.OBP0
			}
		}
		cgbPalette := s.attr & 0x07
		bank := uint8(0)
		if cgb && s.attr&0x08 != 0 {
			bank = 1
		}

		dataAddr := 0x8000 + uint16(code+uint8(tileOffset))*16

		for col := 0; col < 8; col++ {
			x := x0 + col
			if x < 0 || x >= ScreenWidth {
				continue
			}
			bgWins := (s.attr&0x80 != 0 || bgPriority[x]) && bgIndex[x] != 0
			if bgWins {
				continue
			}
			pixel := p.fetchPixel(dataAddr, bank, col, rowInSprite, hflip, false)
			if pixel == 0 {
				continue
			}
			row[x] = Pixel{DMGColor: p.dmgColor(palette, pixel), CGBColor: p.cgbOBJColor(cgbPalette, pixel)}
		}
	}
}
