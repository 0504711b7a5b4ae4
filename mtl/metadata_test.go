package mtl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleMTL = `GROUP = L1_METADATA_FILE
  GROUP = METADATA_FILE_INFO
    ORIGIN = "Image courtesy of the U.S. Geological Survey"
    LANDSAT_SCENE_ID = "LC81920272016290LGN01"
    FILE_DATE = 2016-10-16T09:55:13Z
  END_GROUP = METADATA_FILE_INFO
  GROUP = PRODUCT_METADATA
    SPACECRAFT_ID = "LANDSAT_8"
    SENSOR_ID = "OLI_TIRS"
    WRS_PATH = 192
    WRS_ROW = 27
    DATE_ACQUIRED = 2016-10-16
    FILE_NAME_BAND_4 = "scene_B4.TIF"
  END_GROUP = PRODUCT_METADATA
  GROUP = IMAGE_ATTRIBUTES
    CLOUD_COVER = 29.56
    SUN_ELEVATION = 31.27088342
  END_GROUP = IMAGE_ATTRIBUTES
END_GROUP = L1_METADATA_FILE
END
`

func writeSampleMTL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene_MTL.txt")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.Nil(t, err, "%v", err)
	return path
}

func parseSampleMTL(t *testing.T) *Metadata {
	t.Helper()
	meta := NewMetadata(writeSampleMTL(t, sampleMTL))
	err := meta.Parse()
	assert.Nil(t, err, "%v", err)
	return meta
}

func TestMetadataParse_MissingFile(t *testing.T) {
	meta := NewMetadata(filepath.Join(t.TempDir(), "nope_MTL.txt"))
	err := meta.Parse()
	assert.NotNil(t, err, "missing file did not cause an error")
}

func TestMetadataGet_CaseInsensitive(t *testing.T) {
	meta := parseSampleMTL(t)

	assert.NotNil(t, meta.Get("PRODUCT_METADATA"))
	assert.NotNil(t, meta.Get("pROduct_metaDATA"))
	assert.Nil(t, meta.Get("foo"))
}

func TestMetadataValue_TypedLookups(t *testing.T) {
	meta := parseSampleMTL(t)

	spacecraft, err := meta.String("product_metadata", "spacecraft_id")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "LANDSAT_8", spacecraft)

	path, err := meta.Int("PRODUCT_METADATA", "WRS_PATH")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, 192, path)

	cover, err := meta.Float("IMAGE_ATTRIBUTES", "CLOUD_COVER")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, 29.56, cover)

	// int fields widen on a float lookup
	row, err := meta.Float("PRODUCT_METADATA", "WRS_ROW")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, 27.0, row)
}

func TestMetadataValue_MissingFallsBack(t *testing.T) {
	meta := parseSampleMTL(t)

	_, ok := meta.Value("foo", "bar")
	assert.False(t, ok)

	_, ok = meta.Value("PRODUCT_METADATA", "bar")
	assert.False(t, ok)

	_, err := meta.String("foo", "bar")
	assert.NotNil(t, err, "missing field did not cause an error")
}

func TestMetadataIterGroup(t *testing.T) {
	meta := parseSampleMTL(t)

	fields, err := meta.IterGroup("product_metadata")
	assert.Nil(t, err, "%v", err)
	assert.Len(t, fields, 6)
	for _, field := range fields {
		assert.NotEqual(t, "GROUP", field.Key)
	}
}

func TestMetadataIterGroup_MissingGroupIsAnError(t *testing.T) {
	meta := parseSampleMTL(t)

	_, err := meta.IterGroup("foo")
	assert.NotNil(t, err, "iterating a missing group did not cause an error")
	groupErr, ok := err.(*GroupError)
	assert.True(t, ok, "error is not a GroupError: %v", err)
	assert.Equal(t, "foo", groupErr.Group)
}

func TestMetadataGroups_ParseOrder(t *testing.T) {
	meta := parseSampleMTL(t)
	assert.Equal(t, []string{"METADATA_FILE_INFO", "PRODUCT_METADATA", "IMAGE_ATTRIBUTES"}, meta.Groups())
}

func TestMetadataParse_ReparseReplaces(t *testing.T) {
	meta := parseSampleMTL(t)
	before := meta.Groups()

	err := meta.Parse()
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, before, meta.Groups(), "re-parse accumulated records instead of replacing them")

	fields, err := meta.IterGroup("IMAGE_ATTRIBUTES")
	assert.Nil(t, err, "%v", err)
	assert.Len(t, fields, 2)
}

func TestMetadataParse_DuplicateGroupLastWins(t *testing.T) {
	content := `GROUP = T1
ATTR1 = 1
END_GROUP = T1
GROUP = T1
ATTR1 = 2
END_GROUP = T1
END
`
	meta := NewMetadata(writeSampleMTL(t, content))
	err := meta.Parse()
	assert.Nil(t, err, "%v", err)

	assert.Equal(t, []string{"T1"}, meta.Groups())
	val, ok := meta.Value("T1", "ATTR1")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}
