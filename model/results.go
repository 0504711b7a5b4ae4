package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// SceneTimeFormat is the datetime format used in scene feature properties
const SceneTimeFormat = time.RFC3339

// BasicSceneResult holds the fields common to all resolved Landsat scenes
type BasicSceneResult struct {
	ID           string
	Geometry     interface{}
	CloudCover   float64
	AcquiredDate time.Time
	SpacecraftID string
	SensorID     string
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (sr BasicSceneResult) GeoJSONFeature() (*geojson.Feature, error) {
	f := geojson.NewFeature(sr.Geometry, sr.ID, map[string]interface{}{
		"cloudCover":   sr.CloudCover,
		"acquiredDate": sr.AcquiredDate.Format(SceneTimeFormat),
		"spacecraft":   sr.SpacecraftID,
		"sensor":       sr.SensorID,
	})
	f.Bbox = f.ForceBbox()
	return f, nil
}

// LocalSceneResult represents a scene resolved from a local archive, carrying
// its band file locations
type LocalSceneResult struct {
	BasicSceneResult
	BandFiles
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (result LocalSceneResult) GeoJSONFeature() (*geojson.Feature, error) {
	feature, err := result.BasicSceneResult.GeoJSONFeature()
	if err != nil {
		return nil, err
	}

	if err = result.BandFiles.Apply(feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// MultiSceneResult is a container type for bundling multiple results together,
// e.g. as results from a discover endpoint
type MultiSceneResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiSceneResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
