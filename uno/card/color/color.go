package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is the colour a card carries. Wild is the neutral colour of wild
// cards that have not been assigned one yet.
type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

type colorStruct struct {
	name          string
	short         string
	colorFunction func(string, ...interface{}) string
}

var colorStructs = map[Color]colorStruct{
	Wild: {
		name:          "wild",
		short:         "w",
		colorFunction: fmt.Sprintf,
	},
	Red: {
		name:          "red",
		short:         "r",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		short:         "y",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Green: {
		name:          "green",
		short:         "g",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		short:         "b",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
}

// Choosable lists the colours a wild card may be assigned, in prompt order.
var Choosable = []Color{Red, Green, Blue, Yellow}

var Stdout io.Writer = color.Output

// DisableOutputColors turns terminal painting off process-wide.
func DisableOutputColors() {
	color.NoColor = true
}

func (c Color) Name() string {
	return colorStructs[c].name
}

func (c Color) Short() string {
	return colorStructs[c].short
}

func (c Color) Paint(text string) string {
	return colorStructs[c].colorFunction("%s", text)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a full colour name or its single letter, case-insensitive.
// Wild is never returned.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Choosable {
		if name == c.Name() || name == c.Short() {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
