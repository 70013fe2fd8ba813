package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tickface/gfx"

	"tinygo.org/x/tinyfont"
)

// showPanic logs a recovered drawing panic line by line and replaces the
// face with a text dump of it. The face is drawn again on the next redraw.
func (s *System) showPanic(v any) {
	stack := debug.Stack()
	lines := []string{"tickface panic:", fmt.Sprintf("panic: %v", v)}
	s.logf("app: panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		if s.log != nil {
			s.log.WriteLineString(line)
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	defer func() {
		if v := recover(); v != nil {
			s.logf("app: panic screen failed: %v", v)
		}
	}()

	s.surf.Clear(gfx.White)

	font := panelFont
	fontHeight := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = s.present()
		return
	}

	d := &gfx.Displayer{S: s.surf}
	maxW, maxH := s.screen.Width, s.screen.Height
	cols := int16(maxW) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := fontHeight
draw:
	for _, line := range lines {
		for len(line) > 0 {
			if y > int16(maxH) {
				break draw
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, gfx.Black)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
