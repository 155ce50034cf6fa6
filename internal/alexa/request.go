// Package alexa models the voice platform's request and response envelopes as
// consumed by this skill. Only the fields the skill reads are declared; the
// platform is free to send more.
package alexa

// Request types delivered by the platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// RequestEnvelope is the inbound request from the voice platform.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

// Session carries the conversation-scoped state the platform persists
// between turns.
type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	Attributes map[string]any `json:"attributes,omitempty"`
	User       User           `json:"user"`
}

// Context carries the system context of the request.
type Context struct {
	System System `json:"System"`
}

// System identifies the calling application and user.
type System struct {
	User        User   `json:"user"`
	APIEndpoint string `json:"apiEndpoint,omitempty"`
}

// User is the platform user. AccessToken is present only when the user has
// linked their Spotify account to the skill.
type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Request is the typed payload of an envelope.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Intent is a classified user utterance with its extracted slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is a named parameter extracted from speech. A slot can be absent from
// the map, present with a null value, or present with a value; Value stays
// nil in the null case.
type Slot struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

// IsRequestType reports whether the envelope carries a request of type t.
func (e *RequestEnvelope) IsRequestType(t string) bool {
	return e.Request.Type == t
}

// IsIntent reports whether the envelope carries an intent request named name.
func (e *RequestEnvelope) IsIntent(name string) bool {
	return e.Request.Type == RequestTypeIntent &&
		e.Request.Intent != nil &&
		e.Request.Intent.Name == name
}

// AccessToken returns the linked-account credential, or "" when the user has
// not linked their account.
func (e *RequestEnvelope) AccessToken() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.System.User.AccessToken
}

// SlotValue returns the non-null value of the named slot. The second return
// is false when the slot is absent or its value is null.
func (e *RequestEnvelope) SlotValue(name string) (string, bool) {
	if e.Request.Intent == nil {
		return "", false
	}
	slot, ok := e.Request.Intent.Slots[name]
	if !ok || slot.Value == nil {
		return "", false
	}
	return *slot.Value, true
}

// SessionAttributes returns the session attribute mapping, or nil for a
// request without session state.
func (e *RequestEnvelope) SessionAttributes() map[string]any {
	if e.Session == nil {
		return nil
	}
	return e.Session.Attributes
}
