package jsondoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load parses exactly one document from r. Anything other than whitespace
// after the root value is an error.
func Load(r io.Reader) (Node, error) {
	p := &parser{r: bufio.NewReader(r)}
	root, err := p.parseValue()
	if err != nil {
		return Node{}, err
	}
	c, err := p.nextNonSpace()
	if err == io.EOF {
		return root, nil
	}
	if err != nil {
		return Node{}, err
	}
	return Node{}, p.errorf("unexpected trailing character %q after document", c)
}

// LoadString parses a document held in a string.
func LoadString(s string) (Node, error) {
	return Load(strings.NewReader(s))
}

type parser struct {
	r   *bufio.Reader
	off int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.off, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) read() (byte, error) {
	c, err := p.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, &ParseError{Offset: p.off, Msg: err.Error()}
	}
	p.off++
	return c, nil
}

func (p *parser) unread() {
	_ = p.r.UnreadByte()
	p.off--
}

func (p *parser) peek() (byte, bool) {
	b, err := p.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// nextNonSpace returns the next significant byte or io.EOF.
func (p *parser) nextNonSpace() (byte, error) {
	for {
		c, err := p.read()
		if err != nil {
			return 0, err
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

func (p *parser) parseValue() (Node, error) {
	c, err := p.nextNonSpace()
	if err == io.EOF {
		return Node{}, p.errorf("unexpected EOF, value expected")
	}
	if err != nil {
		return Node{}, err
	}
	switch {
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Node{}, err
		}
		return String(s), nil
	case c == 't' || c == 'f' || c == 'n':
		p.unread()
		return p.parseLiteral()
	case c == '-' || isDigit(c):
		p.unread()
		return p.parseNumber()
	}
	return Node{}, p.errorf("unexpected character %q, value expected", c)
}

func (p *parser) parseLiteral() (Node, error) {
	var sb strings.Builder
	for {
		c, ok := p.peek()
		if !ok || !isLetter(c) {
			break
		}
		_, _ = p.read()
		sb.WriteByte(c)
	}
	switch lit := sb.String(); lit {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	default:
		return Node{}, p.errorf("unknown literal %q", lit)
	}
}

func (p *parser) parseNumber() (Node, error) {
	var sb strings.Builder
	readDigits := func() error {
		c, ok := p.peek()
		if !ok || !isDigit(c) {
			return p.errorf("digit expected in number %q", sb.String())
		}
		for ok && isDigit(c) {
			_, _ = p.read()
			sb.WriteByte(c)
			c, ok = p.peek()
		}
		return nil
	}

	if c, ok := p.peek(); ok && c == '-' {
		_, _ = p.read()
		sb.WriteByte(c)
	}
	if c, ok := p.peek(); ok && c == '0' {
		_, _ = p.read()
		sb.WriteByte(c)
	} else if err := readDigits(); err != nil {
		return Node{}, err
	}

	isInt := true
	if c, ok := p.peek(); ok && c == '.' {
		_, _ = p.read()
		sb.WriteByte(c)
		if err := readDigits(); err != nil {
			return Node{}, err
		}
		isInt = false
	}
	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		_, _ = p.read()
		sb.WriteByte(c)
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			_, _ = p.read()
			sb.WriteByte(c)
		}
		if err := readDigits(); err != nil {
			return Node{}, err
		}
		isInt = false
	}

	lit := sb.String()
	if isInt {
		i, err := strconv.Atoi(lit)
		if err == nil {
			return Int(i), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return Node{}, p.errorf("failed to convert %q to number", lit)
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Node{}, p.errorf("failed to convert %q to number", lit)
	}
	return Float(f), nil
}

// parseString reads up to and including the closing quote.
func (p *parser) parseString() (string, error) {
	var sb strings.Builder
	for {
		c, err := p.read()
		if err == io.EOF {
			return "", p.errorf("unexpected EOF in string")
		}
		if err != nil {
			return "", err
		}
		switch c {
		case '"':
			return sb.String(), nil
		case '\n', '\r':
			return "", p.errorf("unexpected end of line in string")
		case '\\':
			esc, err := p.read()
			if err == io.EOF {
				return "", p.errorf("unexpected EOF in escape sequence")
			}
			if err != nil {
				return "", err
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				return "", p.errorf("unrecognized escape sequence \\%c", esc)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (p *parser) parseArray() (Node, error) {
	arr := Array{}
	c, err := p.nextNonSpace()
	if err == io.EOF {
		return Node{}, p.errorf("unexpected EOF in array")
	}
	if err != nil {
		return Node{}, err
	}
	if c == ']' {
		return NewArray(arr), nil
	}
	if c == ',' {
		return Node{}, p.errorf("unexpected ',' at start of array")
	}
	p.unread()

	for {
		v, err := p.parseValue()
		if err != nil {
			return Node{}, err
		}
		arr = append(arr, v)

		c, err := p.nextNonSpace()
		if err == io.EOF {
			return Node{}, p.errorf("unexpected EOF in array, ',' or ']' expected")
		}
		if err != nil {
			return Node{}, err
		}
		switch c {
		case ']':
			return NewArray(arr), nil
		case ',':
			next, ok := p.peekNonSpace()
			if ok && next == ']' {
				return Node{}, p.errorf("trailing ',' in array")
			}
		default:
			return Node{}, p.errorf("',' or ']' expected in array but %q found", c)
		}
	}
}

func (p *parser) parseObject() (Node, error) {
	obj := Object{}
	c, err := p.nextNonSpace()
	if err == io.EOF {
		return Node{}, p.errorf("unexpected EOF in object")
	}
	if err != nil {
		return Node{}, err
	}
	if c == '}' {
		return NewObject(obj), nil
	}

	for {
		if c != '"' {
			return Node{}, p.errorf("string key expected in object but %q found", c)
		}
		key, err := p.parseString()
		if err != nil {
			return Node{}, err
		}
		if _, dup := obj[key]; dup {
			return Node{}, p.errorf("duplicate key %q in object", key)
		}

		c, err = p.nextNonSpace()
		if err == io.EOF {
			return Node{}, p.errorf("unexpected EOF in object, ':' expected")
		}
		if err != nil {
			return Node{}, err
		}
		if c != ':' {
			return Node{}, p.errorf("':' expected after key %q but %q found", key, c)
		}

		v, err := p.parseValue()
		if err != nil {
			return Node{}, err
		}
		obj[key] = v

		c, err = p.nextNonSpace()
		if err == io.EOF {
			return Node{}, p.errorf("unexpected EOF in object, ',' or '}' expected")
		}
		if err != nil {
			return Node{}, err
		}
		switch c {
		case '}':
			return NewObject(obj), nil
		case ',':
			c, err = p.nextNonSpace()
			if err == io.EOF {
				return Node{}, p.errorf("unexpected EOF in object, key expected")
			}
			if err != nil {
				return Node{}, err
			}
			if c == '}' {
				return Node{}, p.errorf("trailing ',' in object")
			}
		default:
			return Node{}, p.errorf("',' or '}' expected in object but %q found", c)
		}
	}
}

// peekNonSpace skips whitespace and reports the next byte without consuming it.
func (p *parser) peekNonSpace() (byte, bool) {
	for {
		c, ok := p.peek()
		if !ok {
			return 0, false
		}
		if !isSpace(c) {
			return c, true
		}
		_, _ = p.read()
	}
}
