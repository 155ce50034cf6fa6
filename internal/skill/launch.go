package skill

import (
	"context"

	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
)

// LaunchHandler greets the user when the skill is opened without a specific
// intent.
type LaunchHandler struct {
	logger *zap.Logger
}

// NewLaunchHandler creates the launch handler.
func NewLaunchHandler(logger *zap.Logger) *LaunchHandler {
	return &LaunchHandler{logger: logger}
}

// CanHandle accepts session-start requests.
func (h *LaunchHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.IsRequestType(alexa.RequestTypeLaunch)
}

// Handle speaks the welcome text, or the account-linking prompt for an
// unlinked user.
func (h *LaunchHandler) Handle(ctx context.Context, in *Input) (*alexa.ResponseEnvelope, error) {
	h.logger.Info("handling launch request",
		zap.String("requestId", in.Envelope.Request.RequestID))

	return requireLinkedAccount(in, func() (*alexa.ResponseEnvelope, error) {
		return alexa.NewBuilder().
			Speak(phraseWelcome).
			Ask(phraseRepeat).
			Build(), nil
	})
}
