package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Notifier posts reminder messages to the workspace chat gateway
type Notifier struct {
	baseURL        string
	apiKey         string
	defaultChannel string
	client         *http.Client
}

func NewNotifier() *Notifier {
	url := os.Getenv("NOTIFY_BASE_URL")
	if url == "" {
		url = "http://notify-gateway:3000"
	}
	return &Notifier{
		baseURL:        url,
		apiKey:         os.Getenv("NOTIFY_API_KEY"),
		defaultChannel: os.Getenv("NOTIFY_DEFAULT_CHANNEL"),
		client:         &http.Client{},
	}
}

func (s *Notifier) makeRequest(method, endpoint string, payload interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", s.baseURL, endpoint), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// NormalizeChannelID standardizes chat channel identifiers: the gateway
// addresses channels as "#name" and users as "@name"
func NormalizeChannelID(channelID string) string {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return channelID
	}

	if strings.HasPrefix(channelID, "#") || strings.HasPrefix(channelID, "@") {
		return channelID
	}

	// Bare e-mail addresses address a user directly
	if strings.Contains(channelID, "@") {
		return "@" + strings.SplitN(channelID, "@", 2)[0]
	}

	return "#" + channelID
}

// SendMessage posts a text message to the given channel. An empty channel
// falls back to the workspace default channel.
func (s *Notifier) SendMessage(channelID, text string) error {
	if channelID == "" {
		channelID = s.defaultChannel
	}
	channelID = NormalizeChannelID(channelID)
	if channelID == "" {
		return fmt.Errorf("no target channel configured")
	}

	return s.makeRequest("POST", "/api/messages", map[string]string{
		"channel": channelID,
		"text":    text,
	})
}
