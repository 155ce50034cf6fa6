package skill

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
	"github.com/spotiskill/spotiskill/internal/spotify/client"
)

// fakeSpotify records calls and serves canned results.
type fakeSpotify struct {
	devices     []client.Device
	devicesErr  error
	transferErr error

	getDevicesCalls int
	transferred     []string
	tokens          []string
}

func (f *fakeSpotify) GetDevices(ctx context.Context, token string) ([]client.Device, error) {
	f.getDevicesCalls++
	f.tokens = append(f.tokens, token)
	return f.devices, f.devicesErr
}

func (f *fakeSpotify) TransferPlayback(ctx context.Context, token, deviceID string) error {
	f.tokens = append(f.tokens, token)
	f.transferred = append(f.transferred, deviceID)
	return f.transferErr
}

func launchEnvelope(token string) *alexa.RequestEnvelope {
	env := &alexa.RequestEnvelope{
		Version: "1.0",
		Session: &alexa.Session{New: true, SessionID: "sess-1"},
		Request: alexa.Request{Type: alexa.RequestTypeLaunch, RequestID: "req-1"},
	}
	if token != "" {
		env.Context = &alexa.Context{System: alexa.System{User: alexa.User{AccessToken: token}}}
	}
	return env
}

func intentEnvelope(token, intent string, slots map[string]*string, attrs map[string]any) *alexa.RequestEnvelope {
	slotMap := make(map[string]alexa.Slot, len(slots))
	for name, value := range slots {
		slotMap[name] = alexa.Slot{Name: name, Value: value}
	}
	env := &alexa.RequestEnvelope{
		Version: "1.0",
		Session: &alexa.Session{SessionID: "sess-1", Attributes: attrs},
		Request: alexa.Request{
			Type:      alexa.RequestTypeIntent,
			RequestID: "req-1",
			Intent:    &alexa.Intent{Name: intent, Slots: slotMap},
		},
	}
	if token != "" {
		env.Context = &alexa.Context{System: alexa.System{User: alexa.User{AccessToken: token}}}
	}
	return env
}

func strptr(s string) *string { return &s }

func speech(t *testing.T, resp *alexa.ResponseEnvelope) string {
	t.Helper()
	require.NotNil(t, resp.Response.OutputSpeech)
	return resp.Response.OutputSpeech.Text
}

func TestUnlinkedAccountGateAcrossHandlers(t *testing.T) {
	spotify := &fakeSpotify{devices: testDevices()}
	logger := zap.NewNop()

	tests := []struct {
		name     string
		handler  Handler
		envelope *alexa.RequestEnvelope
	}{
		{
			name:     "launch",
			handler:  NewLaunchHandler(logger),
			envelope: launchEnvelope(""),
		},
		{
			name:     "list devices",
			handler:  NewListDevicesHandler(spotify, logger),
			envelope: intentEnvelope("", IntentListDevices, nil, nil),
		},
		{
			name:     "play on device",
			handler:  NewPlayOnDeviceHandler(spotify, logger),
			envelope: intentEnvelope("", IntentPlayOnDevice, map[string]*string{"deviceId": strptr("1")}, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.handler.Handle(context.Background(), NewInput(tt.envelope))
			require.NoError(t, err)

			assert.Equal(t, phraseNotConnected, speech(t, resp))
			require.NotNil(t, resp.Response.Card)
			assert.Equal(t, alexa.CardTypeLinkAccount, resp.Response.Card.Type)
			assert.True(t, resp.Response.ShouldEndSession)
		})
	}

	assert.Zero(t, spotify.getDevicesCalls, "no outbound call for unlinked users")
	assert.Empty(t, spotify.transferred)
}

func TestLaunchConnected(t *testing.T) {
	h := NewLaunchHandler(zap.NewNop())

	resp, err := h.Handle(context.Background(), NewInput(launchEnvelope("tok")))
	require.NoError(t, err)

	assert.Equal(t, phraseWelcome, speech(t, resp))
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, phraseRepeat, resp.Response.Reprompt.OutputSpeech.Text)
	assert.False(t, resp.Response.ShouldEndSession)
}

func TestListDevices(t *testing.T) {
	spotify := &fakeSpotify{devices: testDevices()}
	h := NewListDevicesHandler(spotify, zap.NewNop())

	in := NewInput(intentEnvelope("tok", IntentListDevices, nil, nil))
	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	want := fmt.Sprintf(phraseDevicesFound, "1, Kitchen. 2, Salon. 3, Chambre. ")
	assert.Equal(t, want, speech(t, resp))
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, want, resp.Response.Reprompt.OutputSpeech.Text, "re-prompts with the same text")
	assert.False(t, resp.Response.ShouldEndSession)

	registry := RegistryFromAttributes(in.Attributes)
	require.Len(t, registry, 3)
	d, ok := registry.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "dev-b", d.ID)

	assert.Equal(t, []string{"tok"}, spotify.tokens)
}

func TestListDevicesProviderFailure(t *testing.T) {
	spotify := &fakeSpotify{devicesErr: errors.New("boom")}
	h := NewListDevicesHandler(spotify, zap.NewNop())

	in := NewInput(intentEnvelope("tok", IntentListDevices, nil, map[string]any{
		"1": map[string]any{"id": "stale", "name": "Stale"},
	}))
	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err, "provider failure is silent")

	// The stale registry is fully replaced by an empty one, and the empty
	// list renders as the bare carrier sentence.
	assert.Empty(t, in.Attributes)
	assert.Equal(t, fmt.Sprintf(phraseDevicesFound, ""), speech(t, resp))
}

func TestListDevicesIdempotent(t *testing.T) {
	spotify := &fakeSpotify{devices: testDevices()}
	h := NewListDevicesHandler(spotify, zap.NewNop())

	first := NewInput(intentEnvelope("tok", IntentListDevices, nil, nil))
	firstResp, err := h.Handle(context.Background(), first)
	require.NoError(t, err)

	second := NewInput(intentEnvelope("tok", IntentListDevices, nil, first.Attributes))
	secondResp, err := h.Handle(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, speech(t, firstResp), speech(t, secondResp))
	assert.Equal(t, first.Attributes, second.Attributes)
}

func TestPlayOnDeviceByOrdinal(t *testing.T) {
	spotify := &fakeSpotify{}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry(testDevices()).Attributes()
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceId": strptr("2")}, attrs))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"dev-b"}, spotify.transferred)
	assert.Equal(t, fmt.Sprintf(phrasePlaybackStarted, "Salon"), speech(t, resp))
	assert.True(t, resp.Response.ShouldEndSession, "play turn issues no reprompt")
	assert.Nil(t, resp.Response.Reprompt)
	assert.Zero(t, spotify.getDevicesCalls, "session registry is reused")
}

func TestPlayOnDeviceOrdinalOutOfRange(t *testing.T) {
	spotify := &fakeSpotify{}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry(testDevices()[:2]).Attributes()
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceId": strptr("99")}, attrs))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, phraseNumberNotFound, speech(t, resp))
	assert.Empty(t, spotify.transferred, "no transfer for an unknown ordinal")
}

func TestPlayOnDeviceByName(t *testing.T) {
	spotify := &fakeSpotify{}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry([]client.Device{{ID: "dev-a", Name: "kitchen"}}).Attributes()
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceName": strptr("Kitchen")}, attrs))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"dev-a"}, spotify.transferred, "name match is case-insensitive")
	assert.Equal(t, fmt.Sprintf(phrasePlaybackStarted, "kitchen"), speech(t, resp))
}

func TestPlayOnDeviceNameNotFound(t *testing.T) {
	spotify := &fakeSpotify{}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry(testDevices()).Attributes()
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceName": strptr("Garage")}, attrs))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf(phraseNameNotFound, "garage"), speech(t, resp))
	assert.Empty(t, spotify.transferred)
}

func TestPlayOnDeviceOrdinalWinsOverName(t *testing.T) {
	spotify := &fakeSpotify{}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry(testDevices()).Attributes()
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice, map[string]*string{
		"deviceId":   strptr("1"),
		"deviceName": strptr("Salon"),
	}, attrs))

	_, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"dev-a"}, spotify.transferred)
}

func TestPlayOnDeviceNoSlots(t *testing.T) {
	spotify := &fakeSpotify{}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry(testDevices()).Attributes()

	// Present-with-null and absent slots both count as unpopulated.
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceId": nil}, attrs))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, phraseNoMatch, speech(t, resp))
	assert.Empty(t, spotify.transferred)
}

func TestPlayOnDeviceFetchesWhenSessionEmpty(t *testing.T) {
	spotify := &fakeSpotify{devices: testDevices()}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceId": strptr("1")}, nil))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, spotify.getDevicesCalls)
	assert.Equal(t, []string{"dev-a"}, spotify.transferred)
	assert.Equal(t, fmt.Sprintf(phrasePlaybackStarted, "Kitchen"), speech(t, resp))
	assert.Empty(t, in.Attributes, "fresh registry is not written back to the session")
}

func TestPlayOnDeviceTransferFailure(t *testing.T) {
	spotify := &fakeSpotify{transferErr: errors.New("boom")}
	h := NewPlayOnDeviceHandler(spotify, zap.NewNop())

	attrs := NewRegistry(testDevices()).Attributes()
	in := NewInput(intentEnvelope("tok", IntentPlayOnDevice,
		map[string]*string{"deviceId": strptr("3")}, attrs))

	resp, err := h.Handle(context.Background(), in)
	require.NoError(t, err, "a failed transfer is spoken, not raised")

	assert.Equal(t, fmt.Sprintf(phrasePlaybackFailed, "Chambre"), speech(t, resp))
}

func TestHelpIgnoresAccountLinking(t *testing.T) {
	h := NewHelpHandler()

	resp, err := h.Handle(context.Background(), NewInput(intentEnvelope("", IntentHelp, nil, nil)))
	require.NoError(t, err)

	assert.Equal(t, phraseWelcome, speech(t, resp))
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, phraseRepeat, resp.Response.Reprompt.OutputSpeech.Text)
	assert.Nil(t, resp.Response.Card)
}

func TestSessionEnded(t *testing.T) {
	h := NewSessionEndedHandler(zap.NewNop())

	env := &alexa.RequestEnvelope{
		Version: "1.0",
		Request: alexa.Request{Type: alexa.RequestTypeSessionEnded, RequestID: "req-1", Reason: "USER_INITIATED"},
	}
	resp, err := h.Handle(context.Background(), NewInput(env))
	require.NoError(t, err)

	assert.Nil(t, resp.Response.OutputSpeech)
	assert.Nil(t, resp.Response.Reprompt)
}
