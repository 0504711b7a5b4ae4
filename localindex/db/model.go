package db

import (
	"database/sql"
	"time"

	"github.com/tobijjah/landsat-archive/util"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)

// IndexedScene is one resolved Landsat archive as stored in the scenes table.
type IndexedScene struct {
	ProductID       string
	SpacecraftID    string
	SensorID        string
	AcquisitionDate time.Time
	CloudCover      float64
	SceneDir        string
	// Bounds is the scene footprint as GeoJSON
	Bounds []byte
	// BandFiles maps band codes to resolved file paths
	BandFiles map[string]string
	// bounding box of the footprint, kept flat for range queries
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}
