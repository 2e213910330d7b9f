package launch

import (
	"errors"
	"testing"
)

func TestDispatchSiteChangeUpdatesBothViews(t *testing.T) {
	t.Parallel()

	ds := scenarioDataset(t)
	d := NewDispatcher(ds)
	state, updates, err := d.Dispatch(DefaultControls(ds), Event{Control: ControlSite, Site: "B"})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if state.Site != "B" {
		t.Fatalf("state.Site = %q, want %q", state.Site, "B")
	}
	if len(updates) != 2 {
		t.Fatalf("updates = %d, want 2", len(updates))
	}
	if updates[0].View != ViewProportion || updates[0].Proportion == nil {
		t.Fatalf("first update = %+v, want proportion", updates[0])
	}
	if updates[1].View != ViewCorrelation || updates[1].Correlation == nil {
		t.Fatalf("second update = %+v, want correlation", updates[1])
	}
	if got := len(updates[1].Correlation.Points); got != 2 {
		t.Fatalf("site B points = %d, want 2", got)
	}
}

func TestDispatchPayloadChangeUpdatesCorrelationOnly(t *testing.T) {
	t.Parallel()

	ds := scenarioDataset(t)
	d := NewDispatcher(ds)
	state, updates, err := d.Dispatch(DefaultControls(ds), Event{
		Control: ControlPayload,
		Payload: PayloadRange{Min: -100, Max: 1500},
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if state.Payload != (PayloadRange{Min: 0, Max: 1500}) {
		t.Fatalf("state.Payload = %+v, want clamped range", state.Payload)
	}
	if len(updates) != 1 || updates[0].View != ViewCorrelation {
		t.Fatalf("updates = %+v, want one correlation update", updates)
	}
	if got := len(updates[0].Correlation.Points); got != 2 {
		t.Fatalf("points = %d, want 2", got)
	}
}

func TestDispatchRejectsUnknownControl(t *testing.T) {
	t.Parallel()

	ds := scenarioDataset(t)
	start := DefaultControls(ds)
	state, updates, err := NewDispatcher(ds).Dispatch(start, Event{Control: "zoom"})
	if !errors.Is(err, ErrUnknownControl) {
		t.Fatalf("Dispatch() error = %v, want %v", err, ErrUnknownControl)
	}
	if state != start || updates != nil {
		t.Fatalf("Dispatch() = %+v, %+v; want unchanged state and no updates", state, updates)
	}
}
