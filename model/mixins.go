package model

import "github.com/venicegeo/geojson-go/geojson"

// BandFiles is a mixin containing the resolved band files of a scene, keyed
// by sensor alias or band code
type BandFiles struct {
	Files map[string]string
}

// Apply implements the GeoJSONFeatureMixin interface
func (bf BandFiles) Apply(feature *geojson.Feature) error {
	bands := make(map[string]string, len(bf.Files))
	for band, file := range bf.Files {
		bands[band] = file
	}
	feature.Properties["bands"] = bands
	return nil
}
