package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

func GetSceneByID(tx *sql.Tx, productID string) (*IndexedScene, error) {
	rows, err := tx.Query(`
		SELECT product_id, spacecraft_id, sensor_id, acquisition_date, cloud_cover,
		       scene_dir, bounds, band_files, min_lon, min_lat, max_lon, max_lat
		FROM scenes
		WHERE product_id=$1
		LIMIT 1`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}

	return scanScene(rows)
}

// SearchScenes returns the scenes intersecting bbox, acquired inside the given
// date window and at most maxCloudCover percent cloudy. Intersection runs on
// the flat bounding box columns, not on the exact footprint ring.
func SearchScenes(tx *sql.Tx, bbox geojson.BoundingBox,
	maxCloudCover float64, minAcquiredDate time.Time, maxAcquiredDate time.Time) ([]IndexedScene, error) {
	rows, err := tx.Query(`
		SELECT product_id, spacecraft_id, sensor_id, acquisition_date, cloud_cover,
		       scene_dir, bounds, band_files, min_lon, min_lat, max_lon, max_lat
		FROM scenes
		WHERE min_lon <= $1 AND max_lon >= $2
		  AND min_lat <= $3 AND max_lat >= $4
		  AND cloud_cover <= $5
		  AND acquisition_date BETWEEN $6 AND $7
		ORDER BY acquisition_date DESC`,
		bbox[2], bbox[0], bbox[3], bbox[1],
		maxCloudCover, minAcquiredDate, maxAcquiredDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scenes := []IndexedScene{}
	for rows.Next() {
		scene, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, *scene)
	}

	return scenes, rows.Err()
}

func scanScene(rows *sql.Rows) (*IndexedScene, error) {
	var bandFileBytes []byte
	scene := IndexedScene{}

	err := rows.Scan(&scene.ProductID, &scene.SpacecraftID, &scene.SensorID,
		&scene.AcquisitionDate, &scene.CloudCover, &scene.SceneDir,
		&scene.Bounds, &bandFileBytes,
		&scene.MinLon, &scene.MinLat, &scene.MaxLon, &scene.MaxLat)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(bandFileBytes, &scene.BandFiles); err != nil {
		return nil, err
	}

	return &scene, nil
}
