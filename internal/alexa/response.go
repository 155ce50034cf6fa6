package alexa

// Card types attached to responses.
const (
	CardTypeLinkAccount = "LinkAccount"
)

// ResponseEnvelope is the outbound response to the voice platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

// Response is the spoken/visual payload of a response envelope.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is text to be spoken to the user.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Card is a structured visual hint shown in the companion app.
type Card struct {
	Type string `json:"type"`
}

// Reprompt is spoken when the user stays silent; its presence keeps the
// session open for another utterance.
type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
}

// Builder assembles a ResponseEnvelope. The zero state ends the session;
// calling Ask keeps it open.
type Builder struct {
	envelope ResponseEnvelope
}

// NewBuilder creates a response builder.
func NewBuilder() *Builder {
	return &Builder{
		envelope: ResponseEnvelope{
			Version: "1.0",
			Response: Response{
				ShouldEndSession: true,
			},
		},
	}
}

// Speak sets the spoken output text.
func (b *Builder) Speak(text string) *Builder {
	b.envelope.Response.OutputSpeech = plainText(text)
	return b
}

// Ask sets the reprompt text and keeps the session open.
func (b *Builder) Ask(text string) *Builder {
	b.envelope.Response.Reprompt = &Reprompt{OutputSpeech: plainText(text)}
	b.envelope.Response.ShouldEndSession = false
	return b
}

// WithLinkAccountCard attaches the account-linking card, directing the user
// to the skill settings.
func (b *Builder) WithLinkAccountCard() *Builder {
	b.envelope.Response.Card = &Card{Type: CardTypeLinkAccount}
	return b
}

// WithSessionAttributes sets the session attributes echoed back to the
// platform. The whole mapping is replaced.
func (b *Builder) WithSessionAttributes(attrs map[string]any) *Builder {
	b.envelope.SessionAttributes = attrs
	return b
}

// Build returns the assembled envelope.
func (b *Builder) Build() *ResponseEnvelope {
	env := b.envelope
	return &env
}

func plainText(text string) *OutputSpeech {
	return &OutputSpeech{Type: "PlainText", Text: text}
}
