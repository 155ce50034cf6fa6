// Package skill implements the voice skill: intent dispatch, the device
// registry carried in session attributes, and the Spotify-backed handlers.
package skill

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
	"github.com/spotiskill/spotiskill/internal/spotify/client"
)

// Intent names the skill's interaction model declares.
const (
	IntentListDevices  = "ListDevices"
	IntentPlayOnDevice = "PlayOnDevice"
	IntentHelp         = "AMAZON.HelpIntent"
)

// Slot names used by the PlayOnDevice intent.
const (
	slotDeviceID   = "deviceId"
	slotDeviceName = "deviceName"
)

// ErrUnhandled is returned when no registered handler accepts a request.
var ErrUnhandled = errors.New("no handler accepts the request")

// Spotify is the streaming-provider surface the handlers need.
type Spotify interface {
	GetDevices(ctx context.Context, token string) ([]client.Device, error)
	TransferPlayback(ctx context.Context, token, deviceID string) error
}

// Handler processes one kind of inbound request.
type Handler interface {
	// CanHandle reports whether this handler accepts the request.
	CanHandle(env *alexa.RequestEnvelope) bool
	// Handle produces the response for an accepted request.
	Handle(ctx context.Context, in *Input) (*alexa.ResponseEnvelope, error)
}

// Input carries one request through a handler, including the mutable session
// attributes that the platform persists between turns.
type Input struct {
	Envelope   *alexa.RequestEnvelope
	Attributes map[string]any
}

// NewInput wraps a request envelope for dispatch.
func NewInput(env *alexa.RequestEnvelope) *Input {
	return &Input{
		Envelope:   env,
		Attributes: env.SessionAttributes(),
	}
}

// Dispatcher routes requests to an ordered list of handlers. Registration
// order is priority order; the first handler whose CanHandle returns true
// wins.
type Dispatcher struct {
	handlers []Handler
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher over the given handlers.
func NewDispatcher(logger *zap.Logger, handlers ...Handler) *Dispatcher {
	return &Dispatcher{
		handlers: handlers,
		logger:   logger,
	}
}

// Dispatch routes the envelope to the first matching handler and returns its
// response. A handler error, a panic, or an unmatched request all collapse
// into the fixed apology response: the skill always answers with well-formed
// speech. Session attributes are echoed back on every response so the
// platform keeps them for the next turn.
func (d *Dispatcher) Dispatch(ctx context.Context, env *alexa.RequestEnvelope) *alexa.ResponseEnvelope {
	in := NewInput(env)

	resp, err := d.dispatch(ctx, in)
	if err == nil && resp == nil {
		err = fmt.Errorf("handler returned no response")
	}
	if err != nil {
		d.logger.Error("request handling failed",
			zap.String("requestId", env.Request.RequestID),
			zap.String("requestType", env.Request.Type),
			zap.Error(err))
		resp = alexa.NewBuilder().Speak(phraseError).Ask(phraseError).Build()
	}

	if resp.SessionAttributes == nil && len(in.Attributes) > 0 {
		resp.SessionAttributes = in.Attributes
	}
	return resp
}

func (d *Dispatcher) dispatch(ctx context.Context, in *Input) (resp *alexa.ResponseEnvelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()

	for _, h := range d.handlers {
		if h.CanHandle(in.Envelope) {
			return h.Handle(ctx, in)
		}
	}
	return nil, ErrUnhandled
}
