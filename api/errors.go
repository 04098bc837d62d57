package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	shared "pulse-cli/shared"
)

func typeForStatus(status int) shared.ApiErrorType {
	switch status {
	case http.StatusUnauthorized:
		return shared.ApiErrorTypeInvalidSession
	case http.StatusForbidden:
		return shared.ApiErrorTypeForbidden
	case http.StatusNotFound:
		return shared.ApiErrorTypeNotFound
	case http.StatusBadRequest:
		return shared.ApiErrorTypeValidation
	default:
		return shared.ApiErrorTypeOther
	}
}

func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	// Check if the response is JSON
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return &shared.ApiError{
			Type:   typeForStatus(r.StatusCode),
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(errBody, &raw); err != nil {
		log.Printf("Error unmarshalling JSON: %v\n", err)
		return &shared.ApiError{
			Type:   typeForStatus(r.StatusCode),
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	apiErr := &shared.ApiError{
		Type:   typeForStatus(r.StatusCode),
		Status: r.StatusCode,
	}

	// 'error' and 'detail' carry a single message; anything else is a
	// per-field map of messages, first message per field
	for _, key := range []string{"error", "detail"} {
		if rawMsg, ok := raw[key]; ok {
			var msg string
			if err := json.Unmarshal(rawMsg, &msg); err == nil {
				apiErr.Msg = msg
				return apiErr
			}
		}
	}

	fields := map[string]string{}
	for field, rawVal := range raw {
		var msgs []string
		if err := json.Unmarshal(rawVal, &msgs); err == nil {
			if len(msgs) > 0 {
				fields[field] = msgs[0]
			}
			continue
		}

		var msg string
		if err := json.Unmarshal(rawVal, &msg); err == nil {
			fields[field] = msg
		}
	}

	if len(fields) > 0 {
		apiErr.Type = shared.ApiErrorTypeValidation
		apiErr.Msg = "validation failed"
		apiErr.Fields = fields
		return apiErr
	}

	apiErr.Msg = strings.TrimSpace(string(errBody))
	return apiErr
}
