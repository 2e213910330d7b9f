// Package dashboardtest builds module dependencies over a fixed dataset for
// dashboard tests.
package dashboardtest

import (
	"bytes"
	"log"
	"testing"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
)

// Records is a two-site dataset: site A has two successes and one failure,
// site B has two failures.
func Records() []launch.LaunchRecord {
	return []launch.LaunchRecord{
		{LaunchSite: "A", PayloadMassKG: 500, BoosterVersionCategory: "v1.0", Outcome: launch.OutcomeSuccess},
		{LaunchSite: "A", PayloadMassKG: 1500, BoosterVersionCategory: "v1.1", Outcome: launch.OutcomeFailure},
		{LaunchSite: "A", PayloadMassKG: 2500, BoosterVersionCategory: "FT", Outcome: launch.OutcomeSuccess},
		{LaunchSite: "B", PayloadMassKG: 4000, BoosterVersionCategory: "FT", Outcome: launch.OutcomeFailure},
		{LaunchSite: "B", PayloadMassKG: 9600, BoosterVersionCategory: "B4", Outcome: launch.OutcomeFailure},
	}
}

// Views returns a view service over Records.
func Views(t testing.TB) *view.Service {
	t.Helper()
	ds, err := launch.NewDataset(Records())
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	svc, err := view.New(ds)
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	return svc
}

// Dependencies returns module dependencies over Records with logging sent
// to a discarded buffer.
func Dependencies(t testing.TB) module.Dependencies {
	t.Helper()
	return module.Dependencies{
		Views:   Views(t),
		Locales: dashi18n.NewResolver(nil, "en-US"),
		Logger:  log.New(&bytes.Buffer{}, "", 0),
	}
}
