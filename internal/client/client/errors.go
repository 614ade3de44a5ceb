package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// Fallback messages used when the server does not explain a failure.
const (
	msgAuthFailed       = "Authentication failed"
	msgChaptersFailed   = "Failed to generate chapters."
	msgTitlesFailed     = "Failed to generate titles."
	msgProfileFailed    = "Failed to load profile"
	msgProfileSave      = "Failed to update profile"
	msgHistoryFailed    = "Failed to load history"
	msgHistoryDelete    = "Failed to delete record"
	msgUsersFailed      = "Failed to fetch users"
	msgToggleFailed     = "Failed to update user"
	malformedBodyFormat = "%w: malformed response from %s: %v"
)

// errorBody is the failure shape: generation endpoints use "error", the
// rest use "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text(fallback string) string {
	if b.Error != "" {
		return b.Error
	}
	if b.Message != "" {
		return b.Message
	}
	return fallback
}

// response is a fully read HTTP answer.
type response struct {
	path   string
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= http.StatusOK && r.status < http.StatusMultipleChoices
}

// decode unmarshals the body into v. An empty body leaves v untouched.
func (r *response) decode(v any) error {
	if len(r.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf(malformedBodyFormat, common.ErrNetwork, r.path, err)
	}
	return nil
}

// failure builds the error for a rejected call. A body that is not JSON is
// reported as a network error, as the browser client did.
func (r *response) failure(kind error, fallback string) error {
	var b errorBody
	if err := r.decode(&b); err != nil {
		return err
	}
	return &common.ServerError{Kind: kind, Status: r.status, Message: b.text(fallback)}
}
