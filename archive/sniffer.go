package archive

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
)

// DefaultMetadataPattern matches the conventional Landsat metadata filename:
// an optional prefix followed by MTL.txt, case-insensitive.
const DefaultMetadataPattern = `(?i).*_?MTL\.txt`

// MetadataSniffer scans a name listing for the first base name matching the
// given pattern, in listing order. Directory components are ignored; only the
// base name is matched. No match is a MetadataFileError.
func MetadataSniffer(names []string, template string) (string, error) {
	regex, err := regexp.Compile(template)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		base := path.Base(filepath.ToSlash(name))
		if regex.MatchString(base) {
			return base, nil
		}
	}

	return "", &MetadataFileError{Message: fmt.Sprintf("missing Landsat metadata file in %v", names)}
}

// sniffMetadataEntry is MetadataSniffer over archive entries, keeping the full
// entry path so the extracted file can be located below the destination.
func sniffMetadataEntry(names []string, template string) (string, error) {
	regex, err := regexp.Compile(template)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if regex.MatchString(path.Base(filepath.ToSlash(name))) {
			return name, nil
		}
	}

	return "", &MetadataFileError{Message: fmt.Sprintf("missing Landsat metadata file in %v", names)}
}
