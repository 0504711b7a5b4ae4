package model

import (
	"fmt"
	"time"
)

// MTL files spread acquisition timestamps over DATE_ACQUIRED and
// SCENE_CENTER_TIME, and the formats drifted across processing system
// revisions. Lenient multi-layout parsing keeps all of them usable.

var sceneTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"15:04:05.999999999Z",
	"2006-01-02",
}

// ParseSceneTime is a drop-in replacement for time.Parse, matching against the
// timestamp layouts observed in MTL files
func ParseSceneTime(sceneTime string) (time.Time, error) {
	for _, layout := range sceneTimeLayouts {
		if output, err := time.Parse(layout, sceneTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", sceneTime)
}

// SceneAcquiredTime combines the MTL date and center-time fields into one
// timestamp; an unparseable or absent center time degrades to midnight
func SceneAcquiredTime(date string, centerTime string) (time.Time, error) {
	day, err := ParseSceneTime(date)
	if err != nil {
		return time.Time{}, err
	}

	if centerTime == "" {
		return day, nil
	}

	clock, err := ParseSceneTime(centerTime)
	if err != nil {
		return day, nil
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), time.UTC), nil
}
