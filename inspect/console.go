package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Fill classifies segments by occupancy.
type Fill int8

// Occupancy classes of segments.
const (
	Empty Fill = iota
	Partial
	Full
)

func fillOf(used, capacity int) Fill {
	switch {
	case used == 0:
		return Empty
	case used == capacity:
		return Full
	}
	return Partial
}

// Console prints the segment layout of a store as a fill chart, one line per
// segment:
//
//	#0  @0    [████]          4/4
//	#1  @4    [██░░]          2/4
//
// Bars are scaled to Width character cells. Colors are taken from a palette
// indexed by Fill.
type Console struct {
	Width  int // maximum bar width in cells
	colors map[Fill]*color.Color
}

// NewConsole creates a console printer. colors may contain a subset of the
// fill classes; if it is nil, a default palette is used. The bar width is
// derived from the terminal, if stdout is interactive.
func NewConsole(colors map[Fill]*color.Color) *Console {
	c := &Console{Width: WidthFromTerminal()}
	if colors == nil {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() map[Fill]*color.Color {
	return map[Fill]*color.Color{
		Full:    color.New(color.FgGreen),
		Partial: color.New(color.FgYellow),
		Empty:   color.New(color.FgHiBlack),
	}
}

// Print outputs the layout of s to stdout.
func (c *Console) Print(s Layout) error {
	return c.Fprint(os.Stdout, s)
}

// Fprint outputs the layout of s to w.
func (c *Console) Fprint(w io.Writer, s Layout) error {
	width := max(c.Width, 4)
	if _, err := fmt.Fprintf(w, "len=%d cap=%d\n", s.Len(), s.Cap()); err != nil {
		return err
	}
	for info := range s.Segments() {
		cells := min(info.Capacity, width)
		used := info.Used * cells / info.Capacity
		if info.Used > 0 && used == 0 {
			used = 1
		}
		bar := strings.Repeat("█", used) + strings.Repeat("░", cells-used)
		if _, err := fmt.Fprintf(w, "#%-2d @%-10d [", info.Index, info.Start); err != nil {
			return err
		}
		if err := c.styled(w, bar, fillOf(info.Used, info.Capacity)); err != nil {
			return err
		}
		pad := strings.Repeat(" ", width-cells)
		if _, err := fmt.Fprintf(w, "]%s %d/%d\n", pad, info.Used, info.Capacity); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) styled(w io.Writer, s string, fill Fill) error {
	if col, ok := c.colors[fill]; ok && col != nil {
		_, err := col.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// WidthFromTerminal is a simple helper to find a bar width. It checks whether
// stdout is a terminal, and if so it reads the terminal's width and reserves
// room for the segment annotations.
func WidthFromTerminal() int {
	width := 32
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 40 {
			width = min(w-30, 64)
		}
	}
	tracer().P("inspect", "console").Debugf("setting bar width to %d", width)
	return width
}
