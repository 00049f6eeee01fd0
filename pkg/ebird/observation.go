package ebird

import (
	"fmt"
	"time"
)

// obsDt carries minute precision when the checklist records a time, date
// precision otherwise.
const (
	obsTimeLayout = "2006-01-02 15:04"
	obsDateLayout = "2006-01-02"
)

// Observation is one eBird species observation as returned by the
// recent-observations endpoints. HowMany is nil when the checklist recorded
// presence without a count ("X").
type Observation struct {
	SpeciesCode     string  `json:"speciesCode"`
	ComName         string  `json:"comName"`
	SciName         string  `json:"sciName"`
	LocID           string  `json:"locId"`
	LocName         string  `json:"locName"`
	ObsDt           string  `json:"obsDt"`
	HowMany         *int    `json:"howMany"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	ObsValid        bool    `json:"obsValid"`
	ObsReviewed     bool    `json:"obsReviewed"`
	LocationPrivate bool    `json:"locationPrivate"`
	SubID           string  `json:"subId"`
}

// ObservedAt parses ObsDt into a time in the given location.
func (o *Observation) ObservedAt(loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(obsTimeLayout, o.ObsDt, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(obsDateLayout, o.ObsDt, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse observation date %q: %w", o.ObsDt, err)
	}
	return t, nil
}
