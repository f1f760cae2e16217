package words

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches runs of Unicode word characters: letters, combining
// marks, digits and the underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// DecodeError reports text that is not valid UTF-8.
type DecodeError struct {
	// Source names where the text came from (e.g. "stdin", a resource path).
	Source string
	// Line is the 1-based line number of the first invalid line.
	Line int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("'utf-8' codec can't decode %s line %d: invalid start byte", e.Source, e.Line)
}

// NewDecodeError returns a DecodeError wrapped with the current call stack.
func NewDecodeError(source string, line int) error {
	return errors.WithStack(&DecodeError{Source: source, Line: line})
}

// Tokenize reads all of r and returns its lower-cased word-character runs in
// order of appearance.
func Tokenize(r io.Reader) ([]string, error) {
	lower := cases.Lower(language.Und)

	var out []string
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if !utf8.Valid(line) {
				return nil, NewDecodeError("stdin", lineNo)
			}
			out = append(out, wordPattern.FindAllString(lower.String(string(line)), -1)...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read words: %w", err)
		}
	}
	return out, nil
}

// ParseList parses a word-list resource: one entry per line, with blank
// lines and lines starting with '#' ignored.
func ParseList(data []byte) []string {
	var out []string
	for _, line := range bytes.Split(data, []byte("\n")) {
		entry := strings.TrimSpace(string(line))
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		out = append(out, entry)
	}
	return out
}
