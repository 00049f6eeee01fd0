package ingest

import "time"

// SpeciesReport summarizes one species pull.
type SpeciesReport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Pulled  int    `json:"pulled"`
	New     int    `json:"new"`
	Skipped int    `json:"skipped"`
}

// Report summarizes an ingest run across all configured species.
type Report struct {
	Region     string          `json:"region"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Species    []SpeciesReport `json:"species"`
}

// TotalNew returns the number of sightings registered across all species.
func (r *Report) TotalNew() int {
	var total int
	for _, s := range r.Species {
		total += s.New
	}
	return total
}
