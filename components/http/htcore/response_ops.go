package htcore

import (
	"net/http"
	"strconv"
)

// WriteText writes text to HTTP response.
//
// Remarks:
//   - The response is marked as non-cacheable, each reading is unique.
func WriteText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	w.Header().Set("Cache-Control", "no-store")

	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(text)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
