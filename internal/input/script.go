package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Tokenize splits a replay script into key names. Tokens are separated by
// whitespace and '#' starts a comment that runs to the end of the line. A
// token that names a key ("enter", "esc", ...) is kept whole; any other token
// is split into one key per character.
func Tokenize(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		keys = append(keys, TokenizeLine(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return keys, nil
}

// TokenizeLine splits one script line into key names.
func TokenizeLine(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	var keys []string
	for _, token := range strings.Fields(line) {
		if IsNamedKey(token) {
			keys = append(keys, token)
			continue
		}
		for len(token) > 0 {
			_, size := utf8.DecodeRuneInString(token)
			keys = append(keys, token[:size])
			token = token[size:]
		}
	}
	return keys
}
