package skill

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
)

// PlayOnDeviceHandler transfers playback to the device the user named, either
// by its ordinal from an earlier listing or by its name.
type PlayOnDeviceHandler struct {
	spotify Spotify
	logger  *zap.Logger
}

// NewPlayOnDeviceHandler creates the play-on-device handler.
func NewPlayOnDeviceHandler(spotify Spotify, logger *zap.Logger) *PlayOnDeviceHandler {
	return &PlayOnDeviceHandler{spotify: spotify, logger: logger}
}

// CanHandle accepts the PlayOnDevice intent.
func (h *PlayOnDeviceHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.IsIntent(IntentPlayOnDevice)
}

// Handle resolves the target device and requests the playback transfer. The
// deviceId slot wins over deviceName; with neither populated the user gets
// the generic apology. The turn ends either way, no reprompt.
func (h *PlayOnDeviceHandler) Handle(ctx context.Context, in *Input) (*alexa.ResponseEnvelope, error) {
	h.logger.Info("handling play on device intent",
		zap.String("requestId", in.Envelope.Request.RequestID))

	return requireLinkedAccount(in, func() (*alexa.ResponseEnvelope, error) {
		token := in.Envelope.AccessToken()

		// Reuse the session registry when one exists; an empty one (never
		// listed, or emptied by a failed listing) triggers a fresh fetch.
		// The fresh registry is deliberately not written back to the session.
		registry := RegistryFromAttributes(in.Attributes)
		if len(registry) == 0 {
			devices, err := h.spotify.GetDevices(ctx, token)
			if err != nil {
				h.logger.Error("device listing failed", zap.Error(err))
			}
			registry = NewRegistry(devices)
		}

		var text string
		switch {
		case hasSlotValue(in.Envelope, slotDeviceID):
			ordinal, _ := in.Envelope.SlotValue(slotDeviceID)
			h.logger.Info("resolving device by ordinal", zap.String("ordinal", ordinal))
			if device, ok := registry.Lookup(ordinal); ok {
				text = h.transfer(ctx, token, device)
			} else {
				text = phraseNumberNotFound
			}

		case hasSlotValue(in.Envelope, slotDeviceName):
			name, _ := in.Envelope.SlotValue(slotDeviceName)
			h.logger.Info("resolving device by name", zap.String("name", name))
			if device, ok := registry.FindByName(name); ok {
				text = h.transfer(ctx, token, device)
			} else {
				text = fmt.Sprintf(phraseNameNotFound, strings.ToLower(name))
			}

		default:
			h.logSlotState(in.Envelope)
			text = phraseNoMatch
		}

		return alexa.NewBuilder().Speak(text).Build(), nil
	})
}

// transfer requests the playback transfer and picks the success or failure
// phrase naming the device.
func (h *PlayOnDeviceHandler) transfer(ctx context.Context, token string, device Device) string {
	if err := h.spotify.TransferPlayback(ctx, token, device.ID); err != nil {
		h.logger.Error("playback transfer failed",
			zap.String("deviceName", device.Name),
			zap.Error(err))
		return fmt.Sprintf(phrasePlaybackFailed, device.Name)
	}
	return fmt.Sprintf(phrasePlaybackStarted, device.Name)
}

// logSlotState records the raw slot state when neither device slot resolved,
// for diagnostics only.
func (h *PlayOnDeviceHandler) logSlotState(env *alexa.RequestEnvelope) {
	fields := make([]zap.Field, 0, 2)
	if env.Request.Intent != nil {
		for _, name := range []string{slotDeviceID, slotDeviceName} {
			if slot, ok := env.Request.Intent.Slots[name]; ok {
				if slot.Value != nil {
					fields = append(fields, zap.String(name, *slot.Value))
				} else {
					fields = append(fields, zap.String(name, "<null>"))
				}
			}
		}
	}
	h.logger.Error("no device slot populated", fields...)
}

func hasSlotValue(env *alexa.RequestEnvelope, name string) bool {
	_, ok := env.SlotValue(name)
	return ok
}
