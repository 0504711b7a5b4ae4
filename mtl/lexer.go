package mtl

import (
	"fmt"
	"regexp"
)

const endOfFile = "END"

var (
	startGroupRegexp = regexp.MustCompile(`^GROUP\s=\s(.+)$`)
	endGroupRegexp   = regexp.MustCompile(`^END_GROUP\s=\s(.+)$`)
)

// rawGroup is one GROUP/END_GROUP span: its tag plus every line in between,
// the GROUP statement itself included.
type rawGroup struct {
	tag   string
	lines []string
}

// lexGroups runs the stack-structured grouping pass over the trimmed lines.
// Groups are emitted in close order; nesting is legal. A diverging end tag or
// a statement outside of any open group is fatal. The bare END sentinel stops
// lexing immediately, discarding whatever is still open.
func lexGroups(lines []string) ([]rawGroup, error) {
	var stack []*rawGroup
	var groups []rawGroup

	for _, line := range lines {
		if match := startGroupRegexp.FindStringSubmatch(line); match != nil {
			stack = append(stack, &rawGroup{tag: match[1], lines: []string{line}})
			continue
		}

		if match := endGroupRegexp.FindStringSubmatch(line); match != nil {
			if len(stack) == 0 {
				return nil, &ParsingError{Message: fmt.Sprintf("unexpected END_GROUP without an open group: %s", match[1])}
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.tag != match[1] {
				return nil, &ParsingError{Message: fmt.Sprintf("diverging start and end tag: %s != %s", top.tag, match[1])}
			}

			groups = append(groups, *top)
			continue
		}

		if line == endOfFile {
			return groups, nil
		}

		if len(stack) == 0 {
			return nil, &ParsingError{Message: fmt.Sprintf("statement outside of any group: %q", line)}
		}
		top := stack[len(stack)-1]
		top.lines = append(top.lines, line)
	}

	// end of input without the END sentinel: open groups are discarded
	return groups, nil
}
