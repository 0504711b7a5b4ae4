package localindex

import (
	"database/sql"

	"github.com/tobijjah/landsat-archive/localindex/db"
	"github.com/tobijjah/landsat-archive/model"
)

func getMetadata(tx *sql.Tx, sceneID string) (model.GeoJSONFeatureCreator, error) {
	scene, err := db.GetSceneByID(tx, sceneID)
	if err != nil {
		return nil, err
	}

	result, err := localSceneResultFromScene(*scene)
	if err != nil {
		return nil, err
	}

	return result, nil
}
