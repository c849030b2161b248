package models

// BuildingInfo is the descriptive record shown on the building info page.
// Buildings we have no facts for only carry a name.
type BuildingInfo struct {
	Name            string   `json:"name"`
	Address         string   `json:"address,omitempty"`
	Neighborhood    string   `json:"neighborhood,omitempty"`
	YearBuilt       int      `json:"yearBuilt,omitempty"`
	HasElevator     *bool    `json:"hasElevator,omitempty"`
	PeoplePerWasher *float64 `json:"peoplePerWasher,omitempty"`
}

// HasDetails reports whether anything beyond the name is known.
func (b BuildingInfo) HasDetails() bool {
	return b.Address != ""
}

// BuildingSummary is what the building API returns for one building.
type BuildingSummary struct {
	Name     string        `json:"name"`
	Token    string        `json:"token,omitempty"`
	Lat      float64       `json:"lat"`
	Lng      float64       `json:"lng"`
	Geohash  string        `json:"geohash"`
	Info     *BuildingInfo `json:"info,omitempty"`
	Location string        `json:"campusLocation,omitempty"`
}
