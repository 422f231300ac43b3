package calcerr

import "net/http"

// Status maps a calculation error to the HTTP status handlers reply with.
func Status(err error) int {
	switch KindOf(err) {
	case KindMissingInput, KindInvalidEnum:
		return http.StatusBadRequest
	case KindDomain:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing text for err.
func Message(err error) string {
	if KindOf(err) == "" {
		return "Calculation error"
	}
	return err.Error()
}
