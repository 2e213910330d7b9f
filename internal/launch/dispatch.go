package launch

import (
	"errors"
	"fmt"
)

// ControlID names a dashboard input.
type ControlID string

const (
	// ControlSite is the launch site selector.
	ControlSite ControlID = "site"
	// ControlPayload is the payload range selector.
	ControlPayload ControlID = "payload"
)

// ViewID names a dashboard chart.
type ViewID string

const (
	// ViewProportion is the success proportion pie chart.
	ViewProportion ViewID = "proportion"
	// ViewCorrelation is the payload/outcome scatter chart.
	ViewCorrelation ViewID = "correlation"
)

// ErrUnknownControl reports an event for an input the dispatcher does not own.
var ErrUnknownControl = errors.New("unknown control")

// Event is one change of a dashboard input.
type Event struct {
	Control ControlID
	Site    string
	Payload PayloadRange
}

// Update carries a freshly resolved view. Exactly one chart is set.
type Update struct {
	View        ViewID            `json:"view"`
	Proportion  *ProportionChart  `json:"proportion,omitempty"`
	Correlation *CorrelationChart `json:"correlation,omitempty"`
}

// ViewHandler recomputes one view from the current control values.
type ViewHandler func(ds *Dataset, state Controls) Update

// ProportionHandler resolves the pie view.
func ProportionHandler(ds *Dataset, state Controls) Update {
	chart := ResolveProportion(ds, state.Site)
	return Update{View: ViewProportion, Proportion: &chart}
}

// CorrelationHandler resolves the scatter view.
func CorrelationHandler(ds *Dataset, state Controls) Update {
	chart := ResolveCorrelation(ds, state.Site, state.Payload)
	return Update{View: ViewCorrelation, Correlation: &chart}
}

// Dispatcher routes input changes to the view handlers that depend on them.
// It holds no view state: every dispatch recomputes from the event and the
// immutable dataset.
type Dispatcher struct {
	ds       *Dataset
	handlers map[ControlID][]ViewHandler
}

// NewDispatcher wires the dashboard bindings: the site selector drives both
// charts, the payload selector drives only the scatter chart.
func NewDispatcher(ds *Dataset) *Dispatcher {
	d := &Dispatcher{ds: ds, handlers: make(map[ControlID][]ViewHandler)}
	d.Register(ControlSite, ProportionHandler)
	d.Register(ControlSite, CorrelationHandler)
	d.Register(ControlPayload, CorrelationHandler)
	return d
}

// Register binds a handler to an input.
func (d *Dispatcher) Register(control ControlID, handler ViewHandler) {
	if d == nil || handler == nil {
		return
	}
	d.handlers[control] = append(d.handlers[control], handler)
}

// Apply folds ev into state without resolving any view.
func Apply(state Controls, ev Event) (Controls, error) {
	switch ev.Control {
	case ControlSite:
		state.Site = ev.Site
	case ControlPayload:
		state.Payload = ClampPayload(ev.Payload)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownControl, ev.Control)
	}
	return state, nil
}

// Dispatch applies ev and returns the new state with every affected view.
func (d *Dispatcher) Dispatch(state Controls, ev Event) (Controls, []Update, error) {
	next, err := Apply(state, ev)
	if err != nil {
		return state, nil, err
	}
	handlers := d.handlers[ev.Control]
	updates := make([]Update, 0, len(handlers))
	for _, handler := range handlers {
		updates = append(updates, handler(d.ds, next))
	}
	return next, updates, nil
}
