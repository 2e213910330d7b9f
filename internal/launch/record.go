// Package launch models historical launch records and resolves the dashboard
// views derived from them.
package launch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OutcomeClass is the binary landing outcome of one launch.
type OutcomeClass int

const (
	// OutcomeFailure marks an unsuccessful launch.
	OutcomeFailure OutcomeClass = 0
	// OutcomeSuccess marks a successful launch.
	OutcomeSuccess OutcomeClass = 1
)

// Valid reports whether the class is one of the two known outcomes.
func (c OutcomeClass) Valid() bool {
	return c == OutcomeFailure || c == OutcomeSuccess
}

// String renders the class the way it appears in the source table.
func (c OutcomeClass) String() string {
	return strconv.Itoa(int(c))
}

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	FlightNumber           int          `json:"flight_number,omitempty" yaml:"flight_number,omitempty"`
	LaunchSite             string       `json:"launch_site" yaml:"launch_site"`
	PayloadMassKG          float64      `json:"payload_mass_kg" yaml:"payload_mass_kg"`
	BoosterVersion         string       `json:"booster_version,omitempty" yaml:"booster_version,omitempty"`
	BoosterVersionCategory string       `json:"booster_version_category" yaml:"booster_version_category"`
	Outcome                OutcomeClass `json:"class" yaml:"class"`
}

// ErrInvalidRecord reports a row that violates the dataset invariants.
var ErrInvalidRecord = errors.New("invalid launch record")

func (r LaunchRecord) validate() error {
	if strings.TrimSpace(r.LaunchSite) == "" {
		return fmt.Errorf("%w: launch site is required", ErrInvalidRecord)
	}
	if math.IsNaN(r.PayloadMassKG) || math.IsInf(r.PayloadMassKG, 0) {
		return fmt.Errorf("%w: payload mass must be finite", ErrInvalidRecord)
	}
	if r.PayloadMassKG < 0 {
		return fmt.Errorf("%w: payload mass %v is negative", ErrInvalidRecord, r.PayloadMassKG)
	}
	if !r.Outcome.Valid() {
		return fmt.Errorf("%w: outcome class %d is not 0 or 1", ErrInvalidRecord, int(r.Outcome))
	}
	return nil
}
