package db

import (
	"database/sql"
	"encoding/json"
)

// InsertScene writes one scene to the index; an already indexed product_id is
// overwritten so that re-ingesting a reprocessed archive refreshes its row.
func InsertScene(tx *sql.Tx, scene *IndexedScene) error {
	bandFileBytes, err := json.Marshal(scene.BandFiles)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO scenes (product_id, spacecraft_id, sensor_id, acquisition_date, cloud_cover,
		                    scene_dir, bounds, band_files, min_lon, min_lat, max_lon, max_lat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (product_id) DO UPDATE SET
			spacecraft_id=EXCLUDED.spacecraft_id,
			sensor_id=EXCLUDED.sensor_id,
			acquisition_date=EXCLUDED.acquisition_date,
			cloud_cover=EXCLUDED.cloud_cover,
			scene_dir=EXCLUDED.scene_dir,
			bounds=EXCLUDED.bounds,
			band_files=EXCLUDED.band_files,
			min_lon=EXCLUDED.min_lon,
			min_lat=EXCLUDED.min_lat,
			max_lon=EXCLUDED.max_lon,
			max_lat=EXCLUDED.max_lat`,
		scene.ProductID, scene.SpacecraftID, scene.SensorID, scene.AcquisitionDate, scene.CloudCover,
		scene.SceneDir, scene.Bounds, bandFileBytes,
		scene.MinLon, scene.MinLat, scene.MaxLon, scene.MaxLat,
	)
	return err
}

// DeleteScene removes a scene from the index, e.g. when its directory vanished
// between ingest runs.
func DeleteScene(tx *sql.Tx, productID string) error {
	result, err := tx.Exec(`DELETE FROM scenes WHERE product_id=$1`, productID)
	if err != nil {
		return err
	}
	if count, err := result.RowsAffected(); err == nil && count == 0 {
		return sql.ErrNoRows
	}
	return nil
}
