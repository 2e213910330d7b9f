// Package live pushes view updates over a websocket as controls change.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/platform/timeouts"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"golang.org/x/net/websocket"
)

const (
	maxFramePayloadBytes   = 16 * 1024
	maxFramesPerSecond     = 40
	maxDecodeErrorsPerConn = 3
)

// Frame types.
const (
	FrameTypeControlsChange = "controls.change"
	FrameTypeViewUpdate     = "view.update"
	FrameTypeError          = "error"
)

// Error codes carried by error frames.
const (
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeUnknownControl    = "UNKNOWN_CONTROL"
	CodeResourceExhausted = "RESOURCE_EXHAUSTED"
)

// Frame is the envelope for every message in either direction.
type Frame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

// ControlsChange is the payload of a controls.change frame. Payload bounds
// left out keep their current value.
type ControlsChange struct {
	Control    string   `json:"control"`
	Site       string   `json:"site,omitempty"`
	PayloadMin *float64 `json:"payload_min,omitempty"`
	PayloadMax *float64 `json:"payload_max,omitempty"`
}

// ErrorPayload is the payload of an error frame.
type ErrorPayload struct {
	Error FrameError `json:"error"`
}

// FrameError describes a rejected frame.
type FrameError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Module provides the live update websocket.
type Module struct{}

// New returns a live module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "live" }

// Mount wires the websocket endpoint.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Views == nil {
		return module.Mount{}, errors.New("view service is required")
	}
	ws := websocket.Handler(func(conn *websocket.Conn) {
		newSession(conn, deps).run()
	})
	mux := http.NewServeMux()
	mux.Handle(http.MethodGet+" "+routepath.Live, ws)
	return module.Mount{Prefix: routepath.Live, Handler: mux}, nil
}

// session holds one connection's control state.
type session struct {
	conn  *websocket.Conn
	deps  module.Dependencies
	loc   dashi18n.Localizer
	state launch.Controls
}

func newSession(conn *websocket.Conn, deps module.Dependencies) *session {
	conn.MaxPayloadBytes = maxFramePayloadBytes
	return &session{
		conn:  conn,
		deps:  deps,
		loc:   dashi18n.Printer(deps.Locales.ResolveTag(conn.Request())),
		state: deps.Views.Defaults(),
	}
}

func (s *session) run() {
	defer func() {
		_ = s.conn.Close()
	}()
	ctx := s.conn.Request().Context()

	windowStart := time.Now()
	framesInWindow := 0
	decodeErrors := 0

	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(timeouts.LiveIdle))
		var raw []byte
		if err := websocket.Message.Receive(s.conn, &raw); err != nil {
			if errors.Is(err, websocket.ErrFrameTooLarge) {
				_ = s.writeError("", CodeInvalidArgument, "errors.invalid_frame")
				continue
			}
			if !errors.Is(err, io.EOF) {
				s.logf("live connection closed err=%v", err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			decodeErrors++
			_ = s.writeError("", CodeInvalidArgument, "errors.invalid_frame")
			if decodeErrors >= maxDecodeErrorsPerConn {
				return
			}
			continue
		}
		decodeErrors = 0

		now := time.Now()
		if now.Sub(windowStart) >= time.Second {
			windowStart = now
			framesInWindow = 0
		}
		framesInWindow++
		if framesInWindow > maxFramesPerSecond {
			_ = s.writeError(frame.RequestID, CodeResourceExhausted, "errors.unavailable")
			return
		}

		switch frame.Type {
		case FrameTypeControlsChange:
			s.handleControlsChange(ctx, frame)
		default:
			_ = s.writeError(frame.RequestID, CodeInvalidArgument, "errors.invalid_frame")
		}
	}
}

func (s *session) handleControlsChange(ctx context.Context, frame Frame) {
	var change ControlsChange
	if err := json.Unmarshal(frame.Payload, &change); err != nil {
		_ = s.writeError(frame.RequestID, CodeInvalidArgument, "errors.invalid_frame")
		return
	}
	next, updates, err := s.deps.Views.Dispatch(ctx, s.state, s.event(change))
	if err != nil {
		if errors.Is(err, launch.ErrUnknownControl) {
			_ = s.writeError(frame.RequestID, CodeUnknownControl, "errors.unknown_control")
			return
		}
		_ = s.writeError(frame.RequestID, CodeInvalidArgument, "errors.invalid_input")
		return
	}
	s.state = next
	for _, update := range updates {
		if err := s.write(frame.RequestID, FrameTypeViewUpdate, update); err != nil {
			return
		}
	}
}

// event maps a change onto the current state so omitted fields keep
// their values.
func (s *session) event(change ControlsChange) launch.Event {
	ev := launch.Event{
		Control: launch.ControlID(change.Control),
		Site:    s.state.Site,
		Payload: s.state.Payload,
	}
	if change.Site != "" {
		ev.Site = change.Site
	}
	if change.PayloadMin != nil {
		ev.Payload.Min = *change.PayloadMin
	}
	if change.PayloadMax != nil {
		ev.Payload.Max = *change.PayloadMax
	}
	return ev
}

func (s *session) write(requestID, frameType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return websocket.JSON.Send(s.conn, Frame{Type: frameType, RequestID: requestID, Payload: body})
}

func (s *session) writeError(requestID, code, key string) error {
	return s.write(requestID, FrameTypeError, ErrorPayload{Error: FrameError{Code: code, Message: s.loc.Sprintf(key)}})
}

func (s *session) logf(format string, args ...any) {
	if s.deps.Logger != nil {
		s.deps.Logger.Printf(format, args...)
	}
}
