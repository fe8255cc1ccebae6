package term

import "strconv"

// Color is a terminal color: a 256-palette index or a true-color RGB
// value. The zero value is the terminal's default color, so zero-valued
// styles render without any color parameters.
type Color struct {
	R, G, B uint8
	// Indexed means R holds a palette index (0-255); G and B are ignored.
	Indexed bool
	// set distinguishes a chosen color from the zero value.
	set bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{}

// ColorFromIndex creates a 256-palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true, set: true}
}

// ColorFromRGB creates a true color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether c is the terminal's default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Style describes how a run of text is displayed.
type Style struct {
	FG, BG    Color
	Bold      bool
	Dim       bool
	Underline bool
	Reverse   bool
}

// DefaultStyle returns the zero style: the terminal's default colors
// with no attributes set.
func DefaultStyle() Style {
	return Style{}
}

// WithBold returns the style with bold set.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// WithDim returns the style with dim set.
func (s Style) WithDim() Style {
	s.Dim = true
	return s
}

// WithReverse returns the style with reverse video set.
func (s Style) WithReverse() Style {
	s.Reverse = true
	return s
}

// WithFG returns the style with the given foreground color.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns the style with the given background color.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// sgr returns the SGR escape sequence selecting this style, always
// starting from a full reset so styles never leak between runs.
func (s Style) sgr() string {
	seq := "\x1b[0"
	if s.Bold {
		seq += ";1"
	}
	if s.Dim {
		seq += ";2"
	}
	if s.Underline {
		seq += ";4"
	}
	if s.Reverse {
		seq += ";7"
	}
	seq += colorParams(s.FG, 38)
	seq += colorParams(s.BG, 48)
	return seq + "m"
}

// colorParams renders the SGR parameters for a color; base is 38 for
// foreground, 48 for background.
func colorParams(c Color, base int) string {
	switch {
	case c.IsDefault():
		return ""
	case c.Indexed:
		return ";" + strconv.Itoa(base) + ";5;" + strconv.Itoa(int(c.R))
	default:
		return ";" + strconv.Itoa(base) + ";2;" +
			strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	}
}
