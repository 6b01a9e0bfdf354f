package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/ddkwork/golibrary/mylog"
	"golang.org/x/image/colornames"
)

type Style struct {
	BackgroundColor      Color
	PageBorderColor      Color
	PageShadowColor      Color
	SelectionFgColor     Color
	SelectionBgColor     Color
	InkColor             Color
	InkWidth             int
	NoteColor            Color
	NoteBorderColor      Color
	FormFieldColor       Color
	FormFocusColor       Color
	ModebarBgColor       Color
	ModebarFgColor       Color
	ModebarActiveBgColor Color
	ModebarBorderColor   Color
	PageBorderWidth      int
	NoteSize             int
}

func DefaultStyle() Style {
	return Style{
		BackgroundColor:      MustParseHexColor("#3a3a3a"),
		PageBorderColor:      MustParseHexColor("#1d1d1d"),
		PageShadowColor:      MustParseHexColor("#262626"),
		SelectionFgColor:     MustParseHexColor("#1d3b4a"),
		SelectionBgColor:     MustParseHexColor("#8ec3e2"),
		InkColor:             MustParseHexColor("#1040a0"),
		InkWidth:             3,
		NoteColor:            MustParseHexColor("#f5e090"),
		NoteBorderColor:      MustParseHexColor("#9c8a30"),
		FormFieldColor:       MustParseHexColor("#dce8f5"),
		FormFocusColor:       MustParseHexColor("#4a90d9"),
		ModebarBgColor:       MustParseHexColor("#efece5"),
		ModebarFgColor:       MustParseHexColor("#44423d"),
		ModebarActiveBgColor: MustParseHexColor("#d0cbbd"),
		ModebarBorderColor:   MustParseHexColor("#aaa8a2"),
		PageBorderWidth:      1,
		NoteSize:             18,
	}
}

func LoadStyleFromConfigFile(defaults *Style) (s Style, err error) {
	return ReadStyle(StyleConfigFile(), defaults)
}

func MustParseHexColor(s string) (c Color) {
	return mylog.Check2(ParseHexColor(s))
}

func ParseHexColor(s string) (c Color, err error) {
	c.A = 0xff

	if s[0] != '#' {
		mylog.Check(fmt.Errorf("Invalid hex color format when parsing '%s': does not begin with #", s))
		return
	}

	hexToByte := func(b byte) byte {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10
		}
		mylog.Check(fmt.Errorf("Invalid hex color format when parsing '%s': contains a character that is not 0-9, a-f or A-F", s))
		return 0
	}

	switch len(s) {
	case 7:
		c.R = hexToByte(s[1])<<4 + hexToByte(s[2])
		c.G = hexToByte(s[3])<<4 + hexToByte(s[4])
		c.B = hexToByte(s[5])<<4 + hexToByte(s[6])
	case 4:
		c.R = hexToByte(s[1]) * 17
		c.G = hexToByte(s[2]) * 17
		c.B = hexToByte(s[3]) * 17
	default:
		mylog.Check(fmt.Errorf("Invalid hex color format when parsing '%s': length is not 4 or 7 bytes", s))
		return
	}
	return
}

func ReadStyle(path string, defaults *Style) (s Style, err error) {
	if defaults != nil {
		s = *defaults
	}
	file := mylog.Check2(os.Open(path))
	defer file.Close()

	enc := json.NewDecoder(file)
	mylog.Check(enc.Decode(&s))
	return
}

func WriteStyle(path string, s Style) error {
	file := mylog.Check2(os.Create(path))

	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

type Color color.NRGBA

func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"#%02x%02x%02x\"", c.R, c.G, c.B)), nil
}

func (c *Color) UnmarshalJSON(b []byte) error {
	s := string(b)
	if b[0] != '"' || b[len(s)-1] != '"' {
		return fmt.Errorf("Invalid hex color format when unmarshalling JSON color '%s': color should be a string value (in double-quotes)", s)
	}
	col := mylog.Check2(ParseHexColor(string(b[1 : len(b)-1])))

	*c = col
	return nil
}

// ColorFromName resolves an SVG 1.1 color name like "steelblue".
func ColorFromName(name string) (c Color, ok bool) {
	name = strings.ToLower(name)

	col, ok := colornames.Map[name]
	if !ok {
		return
	}
	return Color{R: col.R, G: col.G, B: col.B, A: col.A}, true
}
