package theme

import (
	"fmt"
	"strings"

	"fredulator/calcos/proto"
)

var classNames = map[string]proto.StyleClass{
	"main-window":   proto.StyleWindow,
	"display-entry": proto.StyleDisplay,
	"calc-grid":     proto.StyleGrid,
	"digit-button":  proto.StyleDigitButton,
	"op-button":     proto.StyleOpButton,
	"clear-button":  proto.StyleClearButton,
	"equals-button": proto.StyleEqualsButton,
}

// Parse reads the stylesheet subset the app understands: `.class { color:
// #rgb; background-color: #rrggbb; }` rule sets and `/* */` comments.
// Unknown classes and properties are skipped, so a stylesheet written for
// the full desktop toolkit still loads. Styles apply on top of base.
func Parse(src []byte, base Palette) (Palette, error) {
	p := parser{src: string(src), line: 1}
	pal := base

	for {
		p.skipSpace()
		if p.done() {
			return pal, nil
		}
		if !p.accept('.') {
			return pal, p.errorf("expected '.' starting a selector, got %q", p.peek())
		}
		name := p.ident()
		if name == "" {
			return pal, p.errorf("empty selector")
		}

		p.skipSpace()
		if !p.accept('{') {
			return pal, p.errorf("expected '{' after selector .%s", name)
		}

		style, err := p.declarations()
		if err != nil {
			return pal, err
		}

		class, known := classNames[name]
		if !known {
			continue
		}
		cur := pal[class]
		if style.fgSet {
			cur.FG = style.fg
		}
		if style.bgSet {
			cur.BG = style.bg
		}
		pal[class] = cur
	}
}

type ruleStyle struct {
	fg, bg       RGB
	fgSet, bgSet bool
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

func (p *parser) accept(c byte) bool {
	if p.done() || p.src[p.pos] != c {
		return false
	}
	p.next()
	return true
}

// skipSpace consumes whitespace and /* */ comments.
func (p *parser) skipSpace() {
	for !p.done() {
		c := p.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.next()
		case c == '/' && strings.HasPrefix(p.src[p.pos:], "/*"):
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				p.line += strings.Count(p.src[p.pos:], "\n")
				p.pos = len(p.src)
				return
			}
			for i := 0; i < end+4; i++ {
				p.next()
			}
		default:
			return
		}
	}
}

func (p *parser) ident() string {
	start := p.pos
	for !p.done() {
		c := p.peek()
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' {
			p.next()
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// declarations parses "prop: value;" pairs up to the closing brace.
func (p *parser) declarations() (ruleStyle, error) {
	var style ruleStyle
	for {
		p.skipSpace()
		if p.done() {
			return style, p.errorf("unexpected end of stylesheet inside a rule")
		}
		if p.accept('}') {
			return style, nil
		}

		prop := p.ident()
		if prop == "" {
			return style, p.errorf("expected a property name, got %q", p.peek())
		}
		p.skipSpace()
		if !p.accept(':') {
			return style, p.errorf("expected ':' after %s", prop)
		}
		p.skipSpace()

		start := p.pos
		for !p.done() && p.peek() != ';' && p.peek() != '}' && p.peek() != '\n' {
			p.next()
		}
		value := strings.TrimSpace(p.src[start:p.pos])
		p.accept(';')

		switch prop {
		case "color":
			c, err := parseHexColor(value)
			if err != nil {
				return style, p.errorf("%s: %v", prop, err)
			}
			style.fg = c
			style.fgSet = true
		case "background-color":
			c, err := parseHexColor(value)
			if err != nil {
				return style, p.errorf("%s: %v", prop, err)
			}
			style.bg = c
			style.bgSet = true
		default:
			// Unknown properties (font, padding, ...) are allowed and
			// ignored.
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("stylesheet line %d: %s", p.line, fmt.Sprintf(format, args...))
}

// parseHexColor reads #rgb or #rrggbb.
func parseHexColor(s string) (RGB, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGB{}, fmt.Errorf("unsupported color %q", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return RGB{}, fmt.Errorf("bad hex color %q", s)
		}
		return RGB{r<<4 | r, g<<4 | g, b<<4 | b}, nil
	case 6:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, okH := hexNibble(hex[i*2])
			lo, okL := hexNibble(hex[i*2+1])
			if !okH || !okL {
				return RGB{}, fmt.Errorf("bad hex color %q", s)
			}
			out[i] = hi<<4 | lo
		}
		return RGB{out[0], out[1], out[2]}, nil
	default:
		return RGB{}, fmt.Errorf("unsupported color %q", s)
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
