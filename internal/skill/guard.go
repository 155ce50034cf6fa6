package skill

import "github.com/spotiskill/spotiskill/internal/alexa"

// requireLinkedAccount runs next only when the request carries a Spotify
// access token. Otherwise the user is told to link their account, with a
// LinkAccount card pointing at the skill settings, and the turn ends without
// any outbound call.
func requireLinkedAccount(in *Input, next func() (*alexa.ResponseEnvelope, error)) (*alexa.ResponseEnvelope, error) {
	if in.Envelope.AccessToken() == "" {
		return alexa.NewBuilder().
			Speak(phraseNotConnected).
			WithLinkAccountCard().
			Build(), nil
	}
	return next()
}
