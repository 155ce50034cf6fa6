package skill

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
)

// ListDevicesHandler enumerates the user's playback devices and stores the
// resulting registry in the session for a follow-up play request.
type ListDevicesHandler struct {
	spotify Spotify
	logger  *zap.Logger
}

// NewListDevicesHandler creates the list-devices handler.
func NewListDevicesHandler(spotify Spotify, logger *zap.Logger) *ListDevicesHandler {
	return &ListDevicesHandler{spotify: spotify, logger: logger}
}

// CanHandle accepts the ListDevices intent.
func (h *ListDevicesHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.IsIntent(IntentListDevices)
}

// Handle fetches the device list, replaces the session registry with it, and
// speaks the enumeration. The session stays open so the user can pick a
// device next.
func (h *ListDevicesHandler) Handle(ctx context.Context, in *Input) (*alexa.ResponseEnvelope, error) {
	h.logger.Info("handling list devices intent",
		zap.String("requestId", in.Envelope.Request.RequestID))

	return requireLinkedAccount(in, func() (*alexa.ResponseEnvelope, error) {
		devices, err := h.spotify.GetDevices(ctx, in.Envelope.AccessToken())
		if err != nil {
			// A failed listing is spoken exactly like an empty one; only the
			// logs tell the two apart.
			h.logger.Error("device listing failed", zap.Error(err))
			devices = nil
		}

		registry := NewRegistry(devices)
		in.Attributes = registry.Attributes()

		text := fmt.Sprintf(phraseDevicesFound, registry.Render())
		h.logger.Info("device registry rebuilt", zap.Int("count", len(registry)))

		return alexa.NewBuilder().
			Speak(text).
			Ask(text).
			Build(), nil
	})
}
