package archive

import "fmt"

// UnsupportedSourceError reports a source path that is neither a directory,
// a metadata .txt file, nor a recognized zip/tar container.
type UnsupportedSourceError struct {
	Source string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("archive: %s is not supported", e.Source)
}

// MetadataFileError reports a missing metadata file in a source, or a
// metadata file lacking the spacecraft/sensor identity fields.
type MetadataFileError struct {
	Message string
}

func (e *MetadataFileError) Error() string {
	return "archive: " + e.Message
}

// BandMapError reports a spacecraft/sensor combination with no entry in the
// band table.
type BandMapError struct {
	Key string
}

func (e *BandMapError) Error() string {
	return fmt.Sprintf("archive: no band mapping found for %s", e.Key)
}

// BandNotFoundError reports a band identifier that resolves neither directly
// nor through the alias mapping.
type BandNotFoundError struct {
	ID string
}

func (e *BandNotFoundError) Error() string {
	return fmt.Sprintf("archive: band %s not found", e.ID)
}
