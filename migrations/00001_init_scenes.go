package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

//Up00001 creates the scenes table and its query indexes.
func Up00001(tx *sql.Tx) error {
	// This code is executed when the migration is applied.

	err := addTables(tx)

	if err == nil {
		err = addIndexes(tx)
	}

	return err
}

//Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec(`DROP TABLE IF EXISTS public.scenes;`)
	return err
}

func addTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE public.scenes
		(
			product_id text NOT NULL,
			spacecraft_id text NOT NULL DEFAULT '',
			sensor_id text NOT NULL DEFAULT '',
			acquisition_date timestamp with time zone,
			cloud_cover double precision NOT NULL DEFAULT 0,
			scene_dir text NOT NULL,
			bounds text,
			band_files text NOT NULL DEFAULT '{}',
			min_lon double precision NOT NULL DEFAULT 0,
			min_lat double precision NOT NULL DEFAULT 0,
			max_lon double precision NOT NULL DEFAULT 0,
			max_lat double precision NOT NULL DEFAULT 0,
			CONSTRAINT scenes_primary_product_id PRIMARY KEY (product_id)
		);
		`)
	return err
}

func addIndexes(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE INDEX idx_scenes_acquisition_date
		ON public.scenes (acquisition_date);

		CREATE INDEX idx_scenes_cloud_cover
		ON public.scenes (cloud_cover);

		CREATE INDEX idx_scenes_bbox
		ON public.scenes (min_lon, max_lon, min_lat, max_lat);
		`)
	return err
}
