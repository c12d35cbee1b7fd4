// Package zmanim reports sunset for a coordinate and civil date.
package zmanim

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Sunset returns the time of sunset on the civil date of day at the given
// coordinate (degrees, east and north positive), expressed in loc. ok is
// false when the sun does not set that day.
func Sunset(latitude, longitude float64, day time.Time, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.Date()
	_, set := sunrise.SunriseSunset(latitude, longitude, y, m, d)
	if set.IsZero() {
		return time.Time{}, false
	}
	return set.In(loc), true
}
