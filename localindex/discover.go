package localindex

import (
	"database/sql"
	"time"

	"github.com/tobijjah/landsat-archive/localindex/db"
	"github.com/tobijjah/landsat-archive/model"
	"github.com/venicegeo/geojson-go/geojson"
)

func discoverScenes(tx *sql.Tx, bbox geojson.BoundingBox,
	maxCloudCover float64, minAcquiredDate time.Time, maxAcquiredDate time.Time) (model.GeoJSONFeatureCollectionCreator, error) {
	scenes, err := db.SearchScenes(tx, bbox, maxCloudCover, minAcquiredDate, maxAcquiredDate)
	if err != nil {
		return nil, err
	}

	multiResult := model.MultiSceneResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(scenes)),
	}

	for i, scene := range scenes {
		if multiResult.FeatureCreators[i], err = localSceneResultFromScene(scene); err != nil {
			return nil, err
		}
	}

	return multiResult, nil
}
