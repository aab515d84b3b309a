// Package response implements the wire responses of the upload API: JSON
// bodies with Accept-driven content types, redirect results, and the
// error-array shape browser upload widgets expect.
package response

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// ErrorItem is one element of an error response body.
type ErrorItem struct {
	Error string `json:"error"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Fail writes an error response: an array with a single {"error": message}
// object, matching the body shape upload clients parse.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, []ErrorItem{{Error: message}})
}

// Result writes the outcome of an upload request. With a redirect template
// the client is sent to the template URL with "%s" replaced by the
// URL-encoded JSON payload; otherwise the JSON is the body, typed per the
// request's Accept header.
func Result(w http.ResponseWriter, r *http.Request, payload any, redirect string) {
	body, err := json.Marshal(payload)
	if err != nil {
		Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if redirect != "" {
		location := strings.Replace(redirect, "%s", url.QueryEscape(string(body)), 1)
		http.Redirect(w, r, location, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", ContentTypeFor(r))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ContentTypeFor picks the declared content type from the Accept header.
// The body bytes are identical JSON either way; only the declaration differs.
func ContentTypeFor(r *http.Request) string {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return "application/json"
	}
	return "text/plain"
}
