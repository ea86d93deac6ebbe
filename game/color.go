package game

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color identifies one of the four participants. The numeric value is the
// canonical seating order and indexes every per-color table.
type Color int

const (
	Red Color = iota
	Green
	Yellow
	Blue
)

const NumColors = 4

// AllColors lists every color in canonical order.
var AllColors = []Color{Red, Green, Yellow, Blue}

var colorNames = [NumColors]string{"red", "green", "yellow", "blue"}

// Display names are computed once; a cases.Caser is not safe for
// concurrent use.
var colorTitles = func() [NumColors]string {
	titler := cases.Title(language.English)
	var titles [NumColors]string
	for i, n := range colorNames {
		titles[i] = titler.String(n)
	}
	return titles
}()

func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Title returns the display name used in log messages, e.g. "Yellow".
func (c Color) Title() string {
	if !c.Valid() {
		return c.String()
	}
	return colorTitles[c]
}

// ParseColor maps a color name (case-insensitive) to its Color.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
