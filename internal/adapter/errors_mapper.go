package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// mapStatus converts a non-2xx status into one of the status errors, with the
// trimmed body attached. It returns nil for 2xx.
func mapStatus(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	text := strings.TrimSpace(string(body))

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, text)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, text)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, text)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, text)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, text)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, text)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, text)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, text)
	default:
		if text == "" {
			text = http.StatusText(statusCode)
		}
		return fmt.Errorf("http %d: %s", statusCode, text)
	}
}
