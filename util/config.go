package util

import (
	"os"
)

// Environment variables
const (
	LANDSAT_INDEX_ROOT       = "LANDSAT_INDEX_ROOT"
	LANDSAT_EXTRACT_DIR      = "LANDSAT_EXTRACT_DIR"
	LANDSAT_INGEST_FREQUENCY = "LANDSAT_INGEST_FREQUENCY"
	LANDSAT_METADATA_PATTERN = "LANDSAT_METADATA_PATTERN"
)

// GetIndexRoot returns the directory tree scanned for Landsat sources by the
// ingest job, from the LANDSAT_INDEX_ROOT environment variable
func GetIndexRoot() string {
	root, ok := os.LookupEnv(LANDSAT_INDEX_ROOT)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get an index root from the environment. Ingest will not be available.")
	}
	return root
}

// GetExtractDir returns the directory compressed sources are extracted into,
// from the LANDSAT_EXTRACT_DIR environment variable; empty means "next to the
// source archive"
func GetExtractDir() string {
	dir, ok := os.LookupEnv(LANDSAT_EXTRACT_DIR)
	if !ok {
		LogInfo(&BasicLogContext{}, "No explicit extract directory in the environment. Extracting next to source archives.")
	}
	return dir
}

// GetMetadataPattern returns an override for the metadata filename pattern
// from the LANDSAT_METADATA_PATTERN environment variable, or an empty string
// to use the built-in default
func GetMetadataPattern() string {
	return os.Getenv(LANDSAT_METADATA_PATTERN)
}
