package localindex

import (
	"github.com/tobijjah/landsat-archive/localindex/db"
	"github.com/tobijjah/landsat-archive/model"
	"github.com/venicegeo/geojson-go/geojson"
)

func localSceneResultFromScene(scene db.IndexedScene) (model.LocalSceneResult, error) {
	bounds, err := geojson.PolygonFromBytes(scene.Bounds)
	if err != nil {
		return model.LocalSceneResult{}, err
	}

	return model.LocalSceneResult{
		BasicSceneResult: model.BasicSceneResult{
			ID:           scene.ProductID,
			Geometry:     bounds,
			CloudCover:   scene.CloudCover,
			AcquiredDate: scene.AcquisitionDate,
			SpacecraftID: scene.SpacecraftID,
			SensorID:     scene.SensorID,
		},
		BandFiles: model.BandFiles{Files: scene.BandFiles},
	}, nil
}
