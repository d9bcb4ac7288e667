package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is the wire format version clients parse against.
const envelopeVersion = 1

// Envelope is the uniform response wrapper every endpoint returns.
// Success responses carry data; error responses carry error/code/details.
type Envelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the shared envelope.
// Registered as a huma transformer so handlers return plain bodies.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	// Already wrapped (e.g. re-entrant transformers)
	if _, ok := v.(*Envelope); ok {
		return v, nil
	}

	if apiErr, ok := v.(*APIError); ok {
		return &Envelope{
			V:       envelopeVersion,
			Success: false,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
			Details: apiErr.Details,
		}, nil
	}

	// huma's built-in error model (schema validation failures etc.)
	if errModel, ok := v.(*huma.ErrorModel); ok {
		env := &Envelope{
			V:       envelopeVersion,
			Success: false,
			Error:   errModel.Detail,
		}
		if len(errModel.Errors) > 0 {
			env.Details = errModel.Errors
		}
		return env, nil
	}

	return &Envelope{
		V:       envelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
