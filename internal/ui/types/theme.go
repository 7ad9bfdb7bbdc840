package types

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorFieldBg       = color.RGBA{0, 0, 0, 255}
	ColorFieldBorder   = color.RGBA{60, 60, 65, 255}
	ColorPiece         = color.RGBA{255, 255, 255, 255}
	ColorDivider       = color.RGBA{200, 200, 200, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorButtonBorder  = color.RGBA{100, 100, 110, 255}
	ColorSelected      = color.RGBA{37, 99, 235, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
	ColorPlayer        = color.RGBA{74, 222, 128, 255}
	ColorAI            = color.RGBA{248, 113, 113, 255}
	ColorStart         = color.RGBA{22, 163, 74, 255}
	ColorPause         = color.RGBA{202, 138, 4, 255}
	ColorReset         = color.RGBA{220, 38, 38, 255}
)

var DifficultyColors = []color.RGBA{
	{22, 163, 74, 255},
	{202, 138, 4, 255},
	{220, 38, 38, 255},
}

func GetDifficultyColor(level int) color.RGBA {
	if level < 0 || level >= len(DifficultyColors) {
		return ColorSelected
	}
	return DifficultyColors[level]
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts = &Fonts{
	Normal: basicfont.Face7x13,
	Small:  basicfont.Face7x13,
}

func GetFonts() *Fonts {
	return defaultFonts
}
