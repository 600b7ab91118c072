package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data to JSON and writes it to w together with the given
// status code and a "Content-Type: application/json" header.
//
// If marshalling fails, it responds with HTTP 500 and returns the wrapped
// error; the intended payload is never partially written.
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
