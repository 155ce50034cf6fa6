package skill

import (
	"context"

	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
)

// SessionEndedHandler acknowledges the platform's session teardown
// notification. No speech is allowed in this response.
type SessionEndedHandler struct {
	logger *zap.Logger
}

// NewSessionEndedHandler creates the session-ended handler.
func NewSessionEndedHandler(logger *zap.Logger) *SessionEndedHandler {
	return &SessionEndedHandler{logger: logger}
}

// CanHandle accepts session-ended requests.
func (h *SessionEndedHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.IsRequestType(alexa.RequestTypeSessionEnded)
}

// Handle logs the teardown reason and returns an empty response.
func (h *SessionEndedHandler) Handle(ctx context.Context, in *Input) (*alexa.ResponseEnvelope, error) {
	h.logger.Info("session ended",
		zap.String("requestId", in.Envelope.Request.RequestID),
		zap.String("reason", in.Envelope.Request.Reason))
	return alexa.NewBuilder().Build(), nil
}
