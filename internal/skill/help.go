package skill

import (
	"context"

	"github.com/spotiskill/spotiskill/internal/alexa"
)

// HelpHandler answers the platform's built-in help intent with the same
// welcome text as launch, regardless of account-linking state.
type HelpHandler struct{}

// NewHelpHandler creates the help handler.
func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

// CanHandle accepts the built-in help intent.
func (h *HelpHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.IsIntent(IntentHelp)
}

// Handle speaks the feature overview and keeps the session open.
func (h *HelpHandler) Handle(ctx context.Context, in *Input) (*alexa.ResponseEnvelope, error) {
	return alexa.NewBuilder().
		Speak(phraseWelcome).
		Ask(phraseRepeat).
		Build(), nil
}
