package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Reader is the capability this package needs from a compressed container:
// list its entry names, extract everything, release resources. One
// implementation exists per container format; after OpenReader selects one,
// callers never branch on format again.
type Reader interface {
	EntryNames() ([]string, error)
	ExtractAll(dest string) error
	Close() error
}

type containerFormat int

const (
	formatUnknown containerFormat = iota
	formatZip
	formatTar
	formatTarGzip
)

var (
	zipMagic  = []byte("PK\x03\x04")
	gzipMagic = []byte{0x1f, 0x8b}
	tarMagic  = []byte("ustar")
)

// tar magic sits at offset 257 of the first header block
const tarMagicOffset = 257

// sniffContainerFormat detects zip/tar/tar.gz by content, never by file
// extension; extensions are unreliable for the products this package serves.
func sniffContainerFormat(path string) (containerFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return formatUnknown, err
	}
	defer f.Close()

	header := make([]byte, 512)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return formatUnknown, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, zipMagic):
		return formatZip, nil
	case bytes.HasPrefix(header, gzipMagic):
		return formatTarGzip, nil
	case len(header) >= tarMagicOffset+len(tarMagic) &&
		bytes.Equal(header[tarMagicOffset:tarMagicOffset+len(tarMagic)], tarMagic):
		return formatTar, nil
	}

	return formatUnknown, nil
}

// OpenReader sniffs the container format of path and returns the matching
// Reader. An unrecognized container is an UnsupportedSourceError.
func OpenReader(path string) (Reader, error) {
	format, err := sniffContainerFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case formatZip:
		return openZipReader(path)
	case formatTar:
		return &tarReader{path: path}, nil
	case formatTarGzip:
		return &tarReader{path: path, gzipped: true}, nil
	}

	return nil, &UnsupportedSourceError{Source: path}
}

type zipReader struct {
	rc *zip.ReadCloser
}

func openZipReader(path string) (*zipReader, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &zipReader{rc: rc}, nil
}

func (z *zipReader) EntryNames() ([]string, error) {
	names := make([]string, len(z.rc.File))
	for i, file := range z.rc.File {
		names[i] = file.Name
	}
	return names, nil
}

func (z *zipReader) ExtractAll(dest string) error {
	for _, file := range z.rc.File {
		target, err := entryTarget(dest, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		src, err := file.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, src, file.Mode())
		src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (z *zipReader) Close() error {
	return z.rc.Close()
}

// tarReader reads plain or gzip-compressed tarballs. Tar is stream-oriented,
// so each operation runs its own pass over the file; Close has nothing to
// release.
type tarReader struct {
	path    string
	gzipped bool
}

func (t *tarReader) stream() (*tar.Reader, io.Closer, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, nil, err
	}

	var r io.Reader = f
	if t.gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return tar.NewReader(gz), &tarStreamCloser{gz: gz, f: f}, nil
	}

	return tar.NewReader(r), f, nil
}

type tarStreamCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (c *tarStreamCloser) Close() error {
	gzErr := c.gz.Close()
	if err := c.f.Close(); err != nil {
		return err
	}
	return gzErr
}

func (t *tarReader) EntryNames() ([]string, error) {
	tr, closer, err := t.stream()
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var names []string
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, header.Name)
	}
}

func (t *tarReader) ExtractAll(dest string) error {
	tr, closer, err := t.stream()
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := entryTarget(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, header.FileInfo().Mode()); err != nil {
				return err
			}
		}
	}
}

func (t *tarReader) Close() error {
	return nil
}

// entryTarget joins an entry name onto the destination and rejects names that
// would escape it
func entryTarget(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes extraction directory: %s", name)
	}
	return target, nil
}

func writeEntry(target string, src io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	if mode == 0 {
		mode = 0644
	}
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	return err
}
