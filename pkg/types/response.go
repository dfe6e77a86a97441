package types

// SuccessEnvelope wraps every successful storefront API response.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body; Details carries field-level
// validation messages when the code allows them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
