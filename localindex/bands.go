package localindex

import (
	"database/sql"
	"fmt"

	"github.com/tobijjah/landsat-archive/archive"
	"github.com/tobijjah/landsat-archive/localindex/db"
)

func getBandFileForSceneID(tx *sql.Tx, sceneID string, band string) (string, error) {
	scene, err := db.GetSceneByID(tx, sceneID)
	if err != nil {
		return "", err
	}

	if path, ok := scene.BandFiles[band]; ok {
		return path, nil
	}

	// not a raw band code, try it as a sensor alias
	mapping := archive.DefaultBandTable[scene.SpacecraftID+"_"+scene.SensorID]
	if code, ok := mapping[band]; ok {
		if path, ok := scene.BandFiles[code]; ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("scene %s has no band %s", sceneID, band)
}
