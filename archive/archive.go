package archive

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tobijjah/landsat-archive/mtl"
)

// RasterOpener opens a resolved band file path for reading and returns an
// opaque handle. Decoding the raster is outside this package; the default
// opener is a plain file open.
type RasterOpener func(path string) (io.ReadCloser, error)

func defaultRasterOpener(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Options tune how a source is resolved. The zero value (or a nil pointer)
// selects the defaults.
type Options struct {
	// ExtractTo overrides the extraction destination for compressed sources.
	// Empty means a sibling directory named after the archive filename stem.
	ExtractTo string
	// Alias is a free-form label attached to the archive
	Alias string
	// MetadataPattern overrides the metadata filename regexp
	MetadataPattern string
	// BandTable overrides the static band table
	BandTable BandTable
	// RasterOpener overrides how OpenBand opens resolved files
	RasterOpener RasterOpener
}

func (o *Options) withDefaults() Options {
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.MetadataPattern == "" {
		opts.MetadataPattern = DefaultMetadataPattern
	}
	if opts.BandTable == nil {
		opts.BandTable = DefaultBandTable
	}
	if opts.RasterOpener == nil {
		opts.RasterOpener = defaultRasterOpener
	}
	return opts
}

// Archive is one fully resolved Landsat product: its base directory, parsed
// metadata, selected band mapping and band file index. It is only ever
// constructed through Read; a failed resolution returns no Archive at all.
type Archive struct {
	// Dir is the directory holding the band files
	Dir string
	// Alias is the optional caller-supplied label
	Alias string
	// Metadata is the parsed MTL store
	Metadata *mtl.Metadata

	mapping    BandMapping
	bands      map[string]string
	openRaster RasterOpener
}

// Read classifies a source path as a directory, a standalone metadata file or
// a compressed container, locates and parses the metadata file, and builds
// the band index for the identified sensor. Anything else fails with an
// UnsupportedSourceError.
func Read(source string, opts *Options) (*Archive, error) {
	options := opts.withDefaults()

	info, err := os.Stat(source)
	if err != nil {
		return nil, &UnsupportedSourceError{Source: source}
	}

	if info.IsDir() {
		return directoryRead(source, options)
	}

	if info.Mode().IsRegular() && strings.EqualFold(filepath.Ext(source), ".txt") {
		return metadataRead(source, options)
	}

	if format, err := sniffContainerFormat(source); err == nil && format != formatUnknown {
		return containerRead(source, options)
	}

	return nil, &UnsupportedSourceError{Source: source}
}

func directoryRead(dir string, opts Options) (*Archive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}

	metaFile, err := MetadataSniffer(names, opts.MetadataPattern)
	if err != nil {
		return nil, err
	}

	return construct(dir, filepath.Join(dir, metaFile), opts)
}

func metadataRead(path string, opts Options) (*Archive, error) {
	return construct(filepath.Dir(path), path, opts)
}

func containerRead(source string, opts Options) (*Archive, error) {
	dest := opts.ExtractTo
	if dest == "" {
		stem := strings.SplitN(filepath.Base(source), ".", 2)[0]
		dest = filepath.Join(filepath.Dir(source), stem)
	}

	metaEntry, err := extract(source, dest, opts.MetadataPattern)
	if err != nil {
		return nil, err
	}

	return construct(dest, filepath.Join(dest, filepath.FromSlash(metaEntry)), opts)
}

// extract lists the container, locates the metadata entry and extracts every
// entry to dest. The container handle is released on every exit path.
func extract(source, dest, pattern string) (string, error) {
	reader, err := OpenReader(source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	names, err := reader.EntryNames()
	if err != nil {
		return "", err
	}

	metaEntry, err := sniffMetadataEntry(names, pattern)
	if err != nil {
		return "", err
	}

	if err := reader.ExtractAll(dest); err != nil {
		return "", err
	}

	return metaEntry, nil
}

func construct(dir, metaPath string, opts Options) (*Archive, error) {
	meta := mtl.NewMetadata(metaPath)
	if err := meta.Parse(); err != nil {
		return nil, err
	}

	mapping, err := DispatchMapping(meta, opts.BandTable)
	if err != nil {
		return nil, err
	}

	bands, err := bandFileIndex(meta)
	if err != nil {
		return nil, err
	}

	return &Archive{
		Dir:        dir,
		Alias:      opts.Alias,
		Metadata:   meta,
		mapping:    mapping,
		bands:      bands,
		openRaster: opts.RasterOpener,
	}, nil
}

// BandFile resolves a band identifier to the file path of its physical band.
// The identifier is tried as a raw band code first, then translated through
// the sensor's alias mapping.
func (a *Archive) BandFile(id string) (string, error) {
	if name, ok := a.bands[id]; ok {
		return filepath.Join(a.Dir, name), nil
	}

	if code, ok := a.mapping[id]; ok {
		if name, ok := a.bands[code]; ok {
			return filepath.Join(a.Dir, name), nil
		}
	}

	return "", &BandNotFoundError{ID: id}
}

// OpenBand resolves a band identifier and opens it through the configured
// raster opener
func (a *Archive) OpenBand(id string) (io.ReadCloser, error) {
	path, err := a.BandFile(id)
	if err != nil {
		return nil, err
	}
	return a.openRaster(path)
}

// Bands returns the band codes present in the file index, sorted
func (a *Archive) Bands() []string {
	codes := make([]string, 0, len(a.bands))
	for code := range a.bands {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Mapping returns a copy of the alias mapping selected for this archive
func (a *Archive) Mapping() BandMapping {
	out := make(BandMapping, len(a.mapping))
	for alias, code := range a.mapping {
		out[alias] = code
	}
	return out
}
