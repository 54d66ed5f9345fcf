package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"ventas-dashboard/internal/domain"
)

// APIError is a non-2xx answer from the inventory API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("inventory api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("inventory api: status %d: %s", e.StatusCode, e.Message)
}

// Is lets 401 and 404 answers match the domain sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// UserMessage is the human readable reason given by the API, if any.
func (e *APIError) UserMessage() string {
	return e.Message
}

// parseMessage extracts {"message": "..."} or {"message": ["...", "..."]}.
// Non-JSON bodies yield an empty message.
func parseMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if len(body.Message) > 0 {
		var single string
		if err := json.Unmarshal(body.Message, &single); err == nil {
			return strings.TrimSpace(single)
		}
		var many []string
		if err := json.Unmarshal(body.Message, &many); err == nil {
			return strings.Join(many, "; ")
		}
	}
	if body.Error != "" && body.Error != http.StatusText(http.StatusBadRequest) {
		return body.Error
	}
	return ""
}
