package model

import (
	"fmt"
	"time"
)

// Competency is the (month, year) a process entry logically belongs to,
// distinct from the date its budget commitment was recorded.
type Competency struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// IsZero reports whether the competency could not be derived from the source cell.
func (c Competency) IsZero() bool {
	return c.Month == 0 && c.Year == 0
}

// Before orders competencies chronologically.
func (c Competency) Before(other Competency) bool {
	if c.Year != other.Year {
		return c.Year < other.Year
	}
	return c.Month < other.Month
}

// String renders the competency as YYYY-MM, the label used on charts and dropdowns.
func (c Competency) String() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", c.Year, c.Month)
}

// Record is one process entry from the control spreadsheet.
// ProcessID is not a unique key: the source sheet carries duplicates and blanks.
type Record struct {
	ProcessID      string     `json:"processId"`
	Secretariat    string     `json:"secretariat"`
	Agency         string     `json:"agency"`
	Campaign       string     `json:"campaign"`
	Competency     Competency `json:"competency"`
	CommitmentDate *time.Time `json:"commitmentDate,omitempty"`
	Value          float64    `json:"value"`
	Observation    string     `json:"observation,omitempty"`
	Link           string     `json:"link,omitempty"`
}

// Dataset is an ordered sequence of records sharing the canonical schema.
// Once built by the loader it is never mutated; reloads build a fresh one
// and swap it in whole.
type Dataset []Record
