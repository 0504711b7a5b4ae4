package mtl

import (
	"fmt"
	"io"
	"regexp"
)

var keyValueRegexp = regexp.MustCompile(`^(.+)\s=\s(.+)$`)

// Decode runs the full scan/lex/parse pipeline over raw metadata text and
// returns one record per well-formed group, in close order.
func Decode(r io.Reader) ([]*Record, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	groups, err := lexGroups(lines)
	if err != nil {
		return nil, err
	}

	return parseRecords(groups)
}

// parseRecords converts raw groups into typed records. Lines that are not
// key/value statements are skipped. A group contributes a record only if it
// carries a GROUP key plus at least one further field; a file contributing no
// records at all is unparseable.
func parseRecords(groups []rawGroup) ([]*Record, error) {
	var records []*Record

	for _, group := range groups {
		record := newRecord()

		for _, line := range group.lines {
			match := keyValueRegexp.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			record.append(match[1], CastToBest(match[2]))
		}

		if record.Len() <= 1 {
			continue
		}

		name, ok := record.Value("GROUP")
		if !ok {
			continue
		}
		record.name = fmt.Sprintf("%v", name)

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &ParsingError{Message: "no metadata found"}
	}

	return records, nil
}
