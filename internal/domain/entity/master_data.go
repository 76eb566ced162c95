package entity

import "time"

// Airline is carrier master data keyed by its two-character designator
type Airline struct {
	Code string
	Name string
}

// Airport is airport master data keyed by IATA code
type Airport struct {
	Code     string
	Name     string
	CityCode string
	CityName string
	Zone     string // IANA zone, e.g. Asia/Kolkata
}

// Label renders the airport for passenger-facing text
func (a *Airport) Label() string {
	if a == nil {
		return ""
	}
	if a.Name == "" {
		return a.Code
	}
	if a.CityName == "" {
		return a.Code + " | " + a.Name
	}
	return a.Code + " | " + a.Name + " | " + a.CityName
}

// Location returns the airport's zone, or UTC when it is unknown
func (a *Airport) Location() *time.Location {
	if a == nil || a.Zone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Zone)
	if err != nil {
		return time.UTC
	}
	return loc
}
