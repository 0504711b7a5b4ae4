package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

// General test mocks and utils

var mockPolygon = geojson.NewPolygon([][][]float64{[][]float64{
	[]float64{30, 10}, []float64{40, 40}, []float64{20, 40}, []float64{10, 20}, []float64{30, 10},
}})

var mockBasicSceneResult = BasicSceneResult{
	ID:           "LC81920272016290LGN01",
	Geometry:     mockPolygon,
	CloudCover:   29.56,
	AcquiredDate: time.Unix(123, 0).UTC(),
	SpacecraftID: "LANDSAT_8",
	SensorID:     "OLI_TIRS",
}

var mockBandFiles = BandFiles{
	Files: map[string]string{
		"red": "/data/scene/scene_B4.TIF",
		"nir": "/data/scene/scene_B5.TIF",
		"bq":  "/data/scene/scene_BQA.TIF",
		"10":  "/data/scene/scene_B10.TIF",
	},
}

func TestBasicSceneResult_GeoJSONFeature(t *testing.T) {
	feature, err := mockBasicSceneResult.GeoJSONFeature()

	assert.Nil(t, err, "%v", err)
	assert.Equal(t, "LC81920272016290LGN01", feature.ID)
	assert.Equal(t, mockPolygon, feature.Geometry)
	assert.Equal(t, 29.56, feature.PropertyFloat("cloudCover"))
	assert.Equal(t, time.Unix(123, 0).UTC().Format(SceneTimeFormat), feature.PropertyString("acquiredDate"))
	assert.Equal(t, "LANDSAT_8", feature.PropertyString("spacecraft"))
	assert.Equal(t, "OLI_TIRS", feature.PropertyString("sensor"))
	assert.NotEmpty(t, feature.Bbox, "feature bbox was not forced")
}

func TestLocalSceneResult_GeoJSONFeature(t *testing.T) {
	result := LocalSceneResult{
		BasicSceneResult: mockBasicSceneResult,
		BandFiles:        mockBandFiles,
	}

	feature, err := result.GeoJSONFeature()
	assert.Nil(t, err, "%v", err)

	bands, ok := feature.Properties["bands"].(map[string]string)
	assert.True(t, ok, "bands property missing or mistyped")
	assert.Equal(t, "/data/scene/scene_B4.TIF", bands["red"])
	assert.Equal(t, "/data/scene/scene_B10.TIF", bands["10"])
}

func TestMultiSceneResult_GeoJSONFeatureCollection(t *testing.T) {
	multi := MultiSceneResult{
		FeatureCreators: []GeoJSONFeatureCreator{mockBasicSceneResult, mockBasicSceneResult},
	}

	collection, err := multi.GeoJSONFeatureCollection()
	assert.Nil(t, err, "%v", err)
	assert.Len(t, collection.Features, 2)
}
