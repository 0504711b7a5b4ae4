package mtl

import (
	"bufio"
	"io"
	"strings"
)

// scanLines reads the raw metadata text into an ordered slice of trimmed
// lines. Blank lines are kept; filtering them is the lexer's concern.
func scanLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
