package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// GetDevices returns the user's available playback devices, in the order the
// API reports them.
func (c *Client) GetDevices(ctx context.Context, token string) ([]Device, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/me/player/devices", token, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Error("device listing rejected",
			zap.Int("status", status),
			zap.ByteString("body", body))
		return nil, &APIError{Status: status, Body: string(body)}
	}

	var resp DevicesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse device list: %w", err)
	}
	return resp.Devices, nil
}

// TransferPlayback transfers playback to the given device and starts playing.
// Any status in [200,250) counts as success.
func (c *Client) TransferPlayback(ctx context.Context, token, deviceID string) error {
	body := transferRequest{
		DeviceIDs: []string{deviceID},
		Play:      true,
	}

	status, respBody, err := c.do(ctx, http.MethodPut, "/me/player", token, body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 250 {
		c.logger.Error("playback transfer rejected",
			zap.Int("status", status),
			zap.ByteString("body", respBody))
		return &APIError{Status: status, Body: string(respBody)}
	}
	return nil
}
