package model

import "time"

// FilterSelection is one user interaction's worth of filter values.
// Zero values mean "no constraint on this dimension"; a new selection
// fully replaces the previous one on every interaction.
type FilterSelection struct {
	Secretariat     string     `json:"secretariat,omitempty"`
	Agency          string     `json:"agency,omitempty"`
	Campaign        string     `json:"campaign,omitempty"`
	CompetencyMonth int        `json:"competencyMonth,omitempty"`
	CompetencyYear  int        `json:"competencyYear,omitempty"`
	CommitmentFrom  *time.Time `json:"commitmentFrom,omitempty"`
	CommitmentTo    *time.Time `json:"commitmentTo,omitempty"`
	SearchText      string     `json:"searchText,omitempty"`
}

// IsEmpty reports whether the selection imposes no constraint at all.
func (f FilterSelection) IsEmpty() bool {
	return f.Secretariat == "" &&
		f.Agency == "" &&
		f.Campaign == "" &&
		f.CompetencyMonth == 0 &&
		f.CompetencyYear == 0 &&
		f.CommitmentFrom == nil &&
		f.CommitmentTo == nil &&
		f.SearchText == ""
}
