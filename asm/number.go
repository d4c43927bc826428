package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber accepts the three numeric literal forms spec section 4.3
// allows: decimal ("42", "-3"), hex ("0x2A"), and a single character
// literal ("'A'").
func ParseNumber(text string) (int, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, fmt.Errorf("empty number literal")
	}

	if len(t) >= 3 && t[0] == '\'' && t[len(t)-1] == '\'' {
		body := t[1 : len(t)-1]
		r, err := decodeCharLiteral(body)
		if err != nil {
			return 0, err
		}
		return r, nil
	}

	neg := false
	rest := t
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}

	var v int64
	var err error
	if strings.HasPrefix(strings.ToLower(rest), "0x") {
		v, err = strconv.ParseInt(rest[2:], 16, 64)
	} else {
		v, err = strconv.ParseInt(rest, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("malformed number literal %q", text)
	}
	if neg {
		v = -v
	}
	return int(v), nil
}

// decodeCharLiteral resolves a character literal body: either a single
// character, or a backslash escape (\n, \t, \0, \\, \').
func decodeCharLiteral(body string) (int, error) {
	switch {
	case len(body) == 1:
		return int(body[0]), nil
	case len(body) == 2 && body[0] == '\\':
		switch body[1] {
		case 'n':
			return int('\n'), nil
		case 't':
			return int('\t'), nil
		case '0':
			return 0, nil
		case '\\':
			return int('\\'), nil
		case '\'':
			return int('\''), nil
		default:
			return 0, fmt.Errorf("unknown escape '\\%c'", body[1])
		}
	default:
		return 0, fmt.Errorf("malformed character literal '%s'", body)
	}
}
