package archive

import (
	"regexp"

	"github.com/tobijjah/landsat-archive/mtl"
)

// BandMapping maps sensor-specific aliases ("red", "swir1") to band codes.
// Codes are strings because some are composite, like "6_VCID_1".
type BandMapping map[string]string

// BandTable maps "<SPACECRAFT_ID>_<SENSOR_ID>" keys to the band mapping for
// that combination.
type BandTable map[string]BandMapping

// DefaultBandTable covers the Landsat missions this package knows about. It
// is process-wide, read-only configuration; never mutate it.
var DefaultBandTable = BandTable{
	"LANDSAT_1_MSS": {"green": "4", "red": "5", "nir1": "6", "nir2": "7"},
	"LANDSAT_2_MSS": {"green": "4", "red": "5", "nir1": "6", "nir2": "7"},
	"LANDSAT_3_MSS": {"green": "4", "red": "5", "nir1": "6", "nir2": "7"},
	"LANDSAT_4_MSS": {"green": "1", "red": "2", "nir1": "3", "nir2": "4"},
	"LANDSAT_5_MSS": {"green": "1", "red": "2", "nir1": "3", "nir2": "4"},
	"LANDSAT_4_TM": {
		"blue": "1", "green": "2", "red": "3", "nir": "4",
		"swir1": "5", "tirs": "6", "swir2": "7",
	},
	"LANDSAT_5_TM": {
		"blue": "1", "green": "2", "red": "3", "nir": "4",
		"swir1": "5", "tirs": "6", "swir2": "7",
	},
	"LANDSAT_7_ETM": {
		"blue": "1", "green": "2", "red": "3", "nir": "4", "swir1": "5",
		"tirs_low": "6_VCID_1", "tirs_high": "6_VCID_2", "swir2": "7",
		"panchromatic": "8", "bq": "QUALITY",
	},
	"LANDSAT_8_OLI_TIRS": {
		"coastal": "1", "blue": "2", "green": "3", "red": "4", "nir": "5",
		"swir1": "6", "swir2": "7", "panchromatic": "8", "cirrus": "9",
		"tirs1": "10", "tirs2": "11", "bq": "QUALITY",
	},
}

// band file keys look like FILE_NAME_BAND_4, FILE_NAME_BAND_6_VCID_1 or
// FILE_NAME_BAND_QUALITY
var bandFileRegexp = regexp.MustCompile(`(?i)^FILE_NAME_BAND_((?:\d{1,2}|[A-Za-z]+).*)$`)

// DispatchMapping reads the sensor identity from PRODUCT_METADATA and selects
// the band mapping for it. Missing identity fields are a MetadataFileError;
// an unknown combination is a BandMapError naming the unresolved key. There
// is deliberately no default mapping.
func DispatchMapping(meta *mtl.Metadata, table BandTable) (BandMapping, error) {
	spacecraft, spacecraftErr := meta.String("PRODUCT_METADATA", "SPACECRAFT_ID")
	sensor, sensorErr := meta.String("PRODUCT_METADATA", "SENSOR_ID")

	if spacecraftErr != nil || sensorErr != nil {
		return nil, &MetadataFileError{Message: "metadata does not contain a spacecraft or sensor attribute"}
	}

	key := spacecraft + "_" + sensor
	mapping, ok := table[key]
	if !ok {
		return nil, &BandMapError{Key: key}
	}

	return mapping, nil
}

// bandFileIndex scans PRODUCT_METADATA for FILE_NAME_BAND_* fields and maps
// each band code to its file name.
func bandFileIndex(meta *mtl.Metadata) (map[string]string, error) {
	fields, err := meta.IterGroup("PRODUCT_METADATA")
	if err != nil {
		return nil, err
	}

	bands := map[string]string{}
	for _, field := range fields {
		match := bandFileRegexp.FindStringSubmatch(field.Key)
		if match == nil {
			continue
		}
		name, ok := field.Value.(string)
		if !ok {
			continue
		}
		bands[match[1]] = name
	}

	return bands, nil
}
