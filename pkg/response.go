package pkg

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
	HTML string
}{
	JSON: "application/json",
	Text: "text/plain",
	HTML: "text/html",
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Add("Content-Type", contentType)
	}

	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.JSON, message, http.StatusOK)
}

// FieldErrors holds per-field validation messages for a rejected request.
type FieldErrors map[string]string

// WriteFieldErrors responds with 400 and the field validation errors as JSON.
func WriteFieldErrors(w http.ResponseWriter, fieldErrors FieldErrors) {
	payload, err := json.Marshal(struct {
		Errors FieldErrors `json:"errors"`
	}{Errors: fieldErrors})
	if err != nil {
		log.Errorf("failed to marshal field errors: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, payload, http.StatusBadRequest)
}

// error page bodies, same in all environments (no debug-mode variants)
var errorPages = map[int]string{
	http.StatusBadRequest:          "<html><head><title>400 Bad Request</title></head><body><h1>Bad Request</h1><p>The request could not be processed.</p></body></html>",
	http.StatusForbidden:           "<html><head><title>403 Forbidden</title></head><body><h1>Forbidden</h1><p>You do not have permission to access this page.</p></body></html>",
	http.StatusNotFound:            "<html><head><title>404 Not Found</title></head><body><h1>Not Found</h1><p>The requested page does not exist.</p></body></html>",
	http.StatusInternalServerError: "<html><head><title>500 Server Error</title></head><body><h1>Server Error</h1><p>Something went wrong on our side.</p></body></html>",
}

// WriteErrorPage writes the static error page for the given status code.
// Unknown status codes fall back to a minimal body with the status text.
func WriteErrorPage(w http.ResponseWriter, statusCode int) {
	page, ok := errorPages[statusCode]
	if !ok {
		page = fmt.Sprintf("<html><body><h1>%d %s</h1></body></html>", statusCode, http.StatusText(statusCode))
	}
	WriteResponse(w, ContentType.HTML, page, statusCode)
}
