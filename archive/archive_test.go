package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tobijjah/landsat-archive/mtl"
)

const sampleMTL = `GROUP = L1_METADATA_FILE
  GROUP = METADATA_FILE_INFO
    ORIGIN = "Image courtesy of the U.S. Geological Survey"
    LANDSAT_SCENE_ID = "LC81920272016290LGN01"
  END_GROUP = METADATA_FILE_INFO
  GROUP = PRODUCT_METADATA
    SPACECRAFT_ID = "LANDSAT_8"
    SENSOR_ID = "OLI_TIRS"
    DATE_ACQUIRED = 2016-10-16
    FILE_NAME_BAND_4 = "scene_B4.TIF"
    FILE_NAME_BAND_8 = "scene_B8.TIF"
    FILE_NAME_BAND_10 = "scene_B10.TIF"
    FILE_NAME_BAND_QUALITY = "scene_BQA.TIF"
  END_GROUP = PRODUCT_METADATA
END_GROUP = L1_METADATA_FILE
END
`

// writeSceneDir lays out a minimal scene directory: the MTL file plus the
// band files it names
func writeSceneDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "scene_MTL.txt"), []byte(sampleMTL), 0644)
	assert.Nil(t, err, "%v", err)

	for _, name := range []string{"scene_B4.TIF", "scene_B8.TIF", "scene_B10.TIF", "scene_BQA.TIF"} {
		err = os.WriteFile(filepath.Join(dir, name), []byte("raster"), 0644)
		assert.Nil(t, err, "%v", err)
	}

	return dir
}

func TestMetadataSniffer(t *testing.T) {
	names := []string{"foo", "bar", "foo/bar/landsat_mtl.txt"}

	name, err := MetadataSniffer(names, `(?i).+_mtl.txt`)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "landsat_mtl.txt", name)
}

func TestMetadataSniffer_DefaultPattern(t *testing.T) {
	name, err := MetadataSniffer([]string{"scene_B4.TIF", "LC08_L1TP_MTL.txt"}, DefaultMetadataPattern)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "LC08_L1TP_MTL.txt", name)
}

func TestMetadataSniffer_FirstMatchWins(t *testing.T) {
	name, err := MetadataSniffer([]string{"a_MTL.txt", "b_MTL.txt"}, DefaultMetadataPattern)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "a_MTL.txt", name)
}

func TestMetadataSniffer_NoMatch(t *testing.T) {
	_, err := MetadataSniffer([]string{"foo", "bar"}, DefaultMetadataPattern)
	assert.NotNil(t, err, "missing metadata file did not cause an error")
	assert.IsType(t, &MetadataFileError{}, err)
}

func TestDispatchMapping(t *testing.T) {
	archive, err := Read(writeSceneDir(t), nil)
	assert.Nil(t, err, "%v", err)

	mapping, err := DispatchMapping(archive.Metadata, DefaultBandTable)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "4", mapping["red"])
	assert.Equal(t, "QUALITY", mapping["bq"])
}

func TestDispatchMapping_MissingIdentity(t *testing.T) {
	content := `GROUP = PRODUCT_METADATA
SPACECRAFT_ID = "LANDSAT_8"
FILE_NAME_BAND_4 = "scene_B4.TIF"
END_GROUP = PRODUCT_METADATA
END
`
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "scene_MTL.txt"), []byte(content), 0644)
	assert.Nil(t, err, "%v", err)

	_, err = Read(dir, nil)
	assert.NotNil(t, err, "missing sensor identity did not cause an error")
	assert.IsType(t, &MetadataFileError{}, err)
}

func TestDispatchMapping_UnknownCombination(t *testing.T) {
	content := `GROUP = PRODUCT_METADATA
SPACECRAFT_ID = "LANDSAT_9"
SENSOR_ID = "OLI_TIRS"
FILE_NAME_BAND_4 = "scene_B4.TIF"
END_GROUP = PRODUCT_METADATA
END
`
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "scene_MTL.txt"), []byte(content), 0644)
	assert.Nil(t, err, "%v", err)

	_, err = Read(dir, nil)
	assert.NotNil(t, err, "unknown sensor combination did not cause an error")
	bandMapErr, ok := err.(*BandMapError)
	assert.True(t, ok, "error is not a BandMapError: %v", err)
	assert.Contains(t, bandMapErr.Error(), "LANDSAT_9_OLI_TIRS")
}

func TestRead_Directory(t *testing.T) {
	dir := writeSceneDir(t)

	archive, err := Read(dir, nil)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, dir, archive.Dir)

	path, err := archive.BandFile("red")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, filepath.Join(dir, "scene_B4.TIF"), path)

	// raw band codes resolve without alias translation
	path, err = archive.BandFile("4")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, filepath.Join(dir, "scene_B4.TIF"), path)

	path, err = archive.BandFile("bq")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, filepath.Join(dir, "scene_BQA.TIF"), path)
}

func TestRead_MetadataFile(t *testing.T) {
	dir := writeSceneDir(t)

	archive, err := Read(filepath.Join(dir, "scene_MTL.txt"), nil)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, dir, archive.Dir)

	assert.Equal(t, []string{"10", "4", "8", "QUALITY"}, archive.Bands())
}

func TestRead_UnsupportedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.bin")
	err := os.WriteFile(path, []byte("not an archive at all"), 0644)
	assert.Nil(t, err, "%v", err)

	_, err = Read(path, nil)
	assert.NotNil(t, err, "junk file did not cause an error")
	assert.IsType(t, &UnsupportedSourceError{}, err)

	_, err = Read(filepath.Join(t.TempDir(), "missing"), nil)
	assert.NotNil(t, err, "missing path did not cause an error")
	assert.IsType(t, &UnsupportedSourceError{}, err)
}

func TestBandFile_NotFound(t *testing.T) {
	archive, err := Read(writeSceneDir(t), nil)
	assert.Nil(t, err, "%v", err)

	_, err = archive.BandFile("tirs2")
	assert.NotNil(t, err, "band without a file did not cause an error")
	assert.IsType(t, &BandNotFoundError{}, err)

	_, err = archive.BandFile("nope")
	assert.NotNil(t, err, "unknown identifier did not cause an error")
	assert.IsType(t, &BandNotFoundError{}, err)
}

func TestOpenBand_UsesInjectedOpener(t *testing.T) {
	dir := writeSceneDir(t)

	var opened string
	archive, err := Read(dir, &Options{
		RasterOpener: func(path string) (io.ReadCloser, error) {
			opened = path
			return os.Open(path)
		},
	})
	assert.Nil(t, err, "%v", err)

	rc, err := archive.OpenBand("red")
	assert.Nil(t, err, "%v", err)
	defer rc.Close()
	assert.Equal(t, filepath.Join(dir, "scene_B4.TIF"), opened)
}

func writeZipScene(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.zip")

	f, err := os.Create(path)
	assert.Nil(t, err, "%v", err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range map[string]string{
		"scene_MTL.txt": sampleMTL,
		"scene_B4.TIF":  "raster",
	} {
		entry, err := w.Create(name)
		assert.Nil(t, err, "%v", err)
		_, err = entry.Write([]byte(content))
		assert.Nil(t, err, "%v", err)
	}
	assert.Nil(t, w.Close())

	return path
}

func writeTarScene(t *testing.T, dir string, gzipped bool) string {
	t.Helper()
	name := "scene.tar"
	if gzipped {
		name = "scene.tar.gz"
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	assert.Nil(t, err, "%v", err)
	defer f.Close()

	var sink io.Writer = f
	var gz *gzip.Writer
	if gzipped {
		gz = gzip.NewWriter(f)
		sink = gz
	}

	w := tar.NewWriter(sink)
	for _, entry := range []struct{ name, content string }{
		{"scene_MTL.txt", sampleMTL},
		{"scene_B4.TIF", "raster"},
	} {
		err = w.WriteHeader(&tar.Header{
			Name:     entry.name,
			Mode:     0644,
			Size:     int64(len(entry.content)),
			Typeflag: tar.TypeReg,
		})
		assert.Nil(t, err, "%v", err)
		_, err = w.Write([]byte(entry.content))
		assert.Nil(t, err, "%v", err)
	}
	assert.Nil(t, w.Close())
	if gz != nil {
		assert.Nil(t, gz.Close())
	}

	return path
}

func TestRead_ZipArchive(t *testing.T) {
	dir := t.TempDir()
	zipPath := writeZipScene(t, dir)

	archive, err := Read(zipPath, nil)
	assert.Nil(t, err, "%v", err)

	// extraction defaults to a sibling directory named after the filename stem
	assert.Equal(t, filepath.Join(dir, "scene"), archive.Dir)

	path, err := archive.BandFile("red")
	assert.Nil(t, err, "%v", err)
	_, err = os.Stat(path)
	assert.Nil(t, err, "band file was not extracted: %v", err)
}

func TestRead_ZipArchiveWithExtractTo(t *testing.T) {
	dir := t.TempDir()
	zipPath := writeZipScene(t, dir)
	dest := filepath.Join(dir, "elsewhere")

	archive, err := Read(zipPath, &Options{ExtractTo: dest, Alias: "scene-a"})
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, dest, archive.Dir)
	assert.Equal(t, "scene-a", archive.Alias)
}

func TestRead_TarArchive(t *testing.T) {
	dir := t.TempDir()
	tarPath := writeTarScene(t, dir, false)

	archive, err := Read(tarPath, nil)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, filepath.Join(dir, "scene"), archive.Dir)

	_, err = archive.BandFile("red")
	assert.Nil(t, err, "%v", err)
}

func TestRead_GzippedTarArchive(t *testing.T) {
	dir := t.TempDir()
	tgzPath := writeTarScene(t, dir, true)

	archive, err := Read(tgzPath, nil)
	assert.Nil(t, err, "%v", err)
	// the stem is the text before the first dot
	assert.Equal(t, filepath.Join(dir, "scene"), archive.Dir)
}

func TestSniffContainerFormat(t *testing.T) {
	dir := t.TempDir()

	format, err := sniffContainerFormat(writeZipScene(t, dir))
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, formatZip, format)

	format, err = sniffContainerFormat(writeTarScene(t, dir, false))
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, formatTar, format)

	format, err = sniffContainerFormat(writeTarScene(t, dir, true))
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, formatTarGzip, format)

	junk := filepath.Join(dir, "junk.zip")
	assert.Nil(t, os.WriteFile(junk, []byte("zip by name only"), 0644))
	format, err = sniffContainerFormat(junk)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, formatUnknown, format)
}

func TestReader_EntryNames(t *testing.T) {
	dir := t.TempDir()

	reader, err := OpenReader(writeZipScene(t, dir))
	assert.Nil(t, err, "%v", err)
	defer reader.Close()

	names, err := reader.EntryNames()
	assert.Nil(t, err, "%v", err)
	assert.ElementsMatch(t, []string{"scene_MTL.txt", "scene_B4.TIF"}, names)
}

func TestRead_ParsingErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	content := "GROUP = A\nATTR1 = 1\nEND_GROUP = B\nEND\n"
	err := os.WriteFile(filepath.Join(dir, "scene_MTL.txt"), []byte(content), 0644)
	assert.Nil(t, err, "%v", err)

	_, err = Read(dir, nil)
	assert.NotNil(t, err, "diverging tags did not cause an error")
	assert.IsType(t, &mtl.ParsingError{}, err)
}
