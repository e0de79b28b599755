package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.ErrorResponse{Status: "error", Message: "No frames found"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
