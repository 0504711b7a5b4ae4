package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSceneTime(t *testing.T) {
	for _, input := range []string{
		"2016-10-16T09:55:13.123456789Z",
		"2016-10-16T09:55:13Z",
		"2016-10-16 09:55:13",
		"2016-10-16",
	} {
		parsed, err := ParseSceneTime(input)
		assert.Nil(t, err, "could not parse %s: %v", input, err)
		assert.Equal(t, 2016, parsed.Year())
	}
}

func TestParseSceneTime_Invalid(t *testing.T) {
	_, err := ParseSceneTime("16/10/2016")
	assert.NotNil(t, err, "invalid date did not cause an error")
}

func TestSceneAcquiredTime(t *testing.T) {
	acquired, err := SceneAcquiredTime("2016-10-16", "09:55:13.1234567Z")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, time.Date(2016, 10, 16, 9, 55, 13, 123456700, time.UTC), acquired)
}

func TestSceneAcquiredTime_DateOnly(t *testing.T) {
	acquired, err := SceneAcquiredTime("2016-10-16", "")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, time.Date(2016, 10, 16, 0, 0, 0, 0, time.UTC), acquired)
}

func TestSceneAcquiredTime_BadCenterTimeDegrades(t *testing.T) {
	acquired, err := SceneAcquiredTime("2016-10-16", "not a time")
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, time.Date(2016, 10, 16, 0, 0, 0, 0, time.UTC), acquired)
}

func TestSceneAcquiredTime_BadDate(t *testing.T) {
	_, err := SceneAcquiredTime("yesterday", "")
	assert.NotNil(t, err, "invalid date did not cause an error")
}
