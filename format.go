package pcset

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const typeName = "PCSet"

// String renders the set in normal order, e.g. "PCSet: {0, 4, 7}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteString(typeName)
	b.WriteString(": {")
	for i, pc := range s.NormalOrder() {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(pc))
	}
	b.WriteString("}")
	return b.String()
}

// Parse reads a set from text. Separated integers ("0 4 7", "0,4,7",
// "{0, 4, 7}", "[0, 4, 7]" and the String form) and compact notation with one
// character per pitch class ("047", "01te") are accepted; t or a stands for
// 10, e or b for 11. Compact notation applies only to a bare run of
// characters, so "10" is {1, 0} while "{10}" is {10}.
func Parse(text string) (*Set, error) {
	body := strings.TrimSpace(text)
	prefixed := strings.HasPrefix(body, typeName+":")
	body = strings.TrimSpace(strings.TrimPrefix(body, typeName+":"))
	body, wrapped, err := unwrap(body)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", text)
	}

	tokens := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	// a bare run of characters is compact notation, "{10}" is ten
	compact := !prefixed && !wrapped && len(tokens) == 1 && len(tokens[0]) > 1
	if compact && !strings.HasPrefix(tokens[0], "-") {
		tokens = strings.Split(tokens[0], "")
	}

	pcs := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := parseToken(token)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", text)
		}
		pcs = append(pcs, n)
	}

	s, err := New(pcs...)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", text)
	}

	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Set {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func unwrap(body string) (string, bool, error) {
	pairs := map[byte]byte{'{': '}', '[': ']', '(': ')'}
	if body == "" {
		return body, false, nil
	}

	closing, opened := pairs[body[0]]
	if !opened {
		return body, false, nil
	}

	if len(body) < 2 || body[len(body)-1] != closing {
		return "", false, errors.Wrapf(ErrMalformedSet, "unbalanced %q", body[0])
	}

	return body[1 : len(body)-1], true, nil
}

func parseToken(token string) (int, error) {
	switch strings.ToLower(token) {
	case "t", "a":
		return 10, nil
	case "e", "b":
		return 11, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedSet, "unexpected token %q", token)
	}

	return n, nil
}
