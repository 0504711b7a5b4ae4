package db

import (
	"fmt"
	"time"

	"github.com/tobijjah/landsat-archive/archive"
	"github.com/tobijjah/landsat-archive/model"
	"github.com/tobijjah/landsat-archive/mtl"
	"github.com/venicegeo/geojson-go/geojson"
)

// key shapes drifted across MTL revisions; try the modern one first
var sceneIDFields = []struct{ group, key string }{
	{"METADATA_FILE_INFO", "LANDSAT_PRODUCT_ID"},
	{"METADATA_FILE_INFO", "LANDSAT_SCENE_ID"},
	{"PRODUCT_METADATA", "LANDSAT_SCENE_ID"},
}

var cornerKeyFormats = []struct{ lat, lon string }{
	{"CORNER_%s_LAT_PRODUCT", "CORNER_%s_LON_PRODUCT"},
	{"PRODUCT_%s_CORNER_LAT", "PRODUCT_%s_CORNER_LON"},
}

// IndexedSceneFromArchive converts a resolved archive into its indexed form:
// identity, acquisition attributes, footprint and band file index.
func IndexedSceneFromArchive(a *archive.Archive) (*IndexedScene, error) {
	productID, err := sceneID(a.Metadata)
	if err != nil {
		return nil, err
	}

	spacecraft, _ := a.Metadata.String("PRODUCT_METADATA", "SPACECRAFT_ID")
	sensor, _ := a.Metadata.String("PRODUCT_METADATA", "SENSOR_ID")

	scene := IndexedScene{
		ProductID:    productID,
		SpacecraftID: spacecraft,
		SensorID:     sensor,
		SceneDir:     a.Dir,
		BandFiles:    map[string]string{},
	}

	// cloud cover and acquisition date are desirable but not required for
	// indexing; scenes missing them still resolve and serve bands
	if cover, err := a.Metadata.Float("IMAGE_ATTRIBUTES", "CLOUD_COVER"); err == nil {
		scene.CloudCover = cover
	} else if cover, err := a.Metadata.Float("PRODUCT_METADATA", "CLOUD_COVER"); err == nil {
		scene.CloudCover = cover
	}

	scene.AcquisitionDate = acquiredTime(a.Metadata)

	if bounds, box, err := sceneBounds(a.Metadata); err == nil {
		scene.Bounds = []byte(bounds.String())
		scene.MinLon, scene.MinLat, scene.MaxLon, scene.MaxLat = box[0], box[1], box[2], box[3]
	}

	for _, code := range a.Bands() {
		if path, err := a.BandFile(code); err == nil {
			scene.BandFiles[code] = path
		}
	}

	return &scene, nil
}

func sceneID(meta *mtl.Metadata) (string, error) {
	for _, field := range sceneIDFields {
		if id, err := meta.String(field.group, field.key); err == nil {
			return id, nil
		}
	}
	return "", &archive.MetadataFileError{Message: "metadata does not contain a scene or product identifier"}
}

func acquiredTime(meta *mtl.Metadata) (acquired time.Time) {
	date, err := meta.String("PRODUCT_METADATA", "DATE_ACQUIRED")
	if err != nil {
		date, err = meta.String("PRODUCT_METADATA", "ACQUISITION_DATE")
	}
	if err != nil {
		return
	}

	centerTime, err := meta.String("PRODUCT_METADATA", "SCENE_CENTER_TIME")
	if err != nil {
		centerTime, _ = meta.String("PRODUCT_METADATA", "SCENE_CENTER_SCAN_TIME")
	}

	acquired, _ = model.SceneAcquiredTime(date, centerTime)
	return
}

// sceneBounds builds the footprint ring UL, UR, LR, LL and its bounding box
// [minLon, minLat, maxLon, maxLat]
func sceneBounds(meta *mtl.Metadata) (*geojson.Polygon, [4]float64, error) {
	var box [4]float64
	corners := make([][]float64, 0, 5)

	for _, corner := range []string{"UL", "UR", "LR", "LL"} {
		lat, lon, err := cornerCoordinates(meta, corner)
		if err != nil {
			return nil, box, err
		}
		corners = append(corners, []float64{lon, lat})
	}
	corners = append(corners, corners[0])

	box = [4]float64{corners[0][0], corners[0][1], corners[0][0], corners[0][1]}
	for _, corner := range corners {
		if corner[0] < box[0] {
			box[0] = corner[0]
		}
		if corner[1] < box[1] {
			box[1] = corner[1]
		}
		if corner[0] > box[2] {
			box[2] = corner[0]
		}
		if corner[1] > box[3] {
			box[3] = corner[1]
		}
	}

	return geojson.NewPolygon([][][]float64{corners}), box, nil
}

func cornerCoordinates(meta *mtl.Metadata, corner string) (lat float64, lon float64, err error) {
	for _, format := range cornerKeyFormats {
		lat, err = meta.Float("PRODUCT_METADATA", fmt.Sprintf(format.lat, corner))
		if err != nil {
			continue
		}
		lon, err = meta.Float("PRODUCT_METADATA", fmt.Sprintf(format.lon, corner))
		if err == nil {
			return lat, lon, nil
		}
	}
	return 0, 0, fmt.Errorf("no %s corner coordinates in PRODUCT_METADATA", corner)
}
