package handlers

import (
	"net/http"
	"strings"
)

// htmx request and response headers
const (
	headerHXRequest          = "HX-Request"
	headerHXTriggerAfterSwap = "HX-Trigger-After-Swap"
)

// scrollTopEvent is handled by static/app.js.
const scrollTopEvent = "scroll-top"

// isHTMXRequest reports whether the request was initiated by htmx.
func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(headerHXRequest), "true")
}

// triggerAfterSwap asks htmx to dispatch event once the response is swapped in.
func triggerAfterSwap(w http.ResponseWriter, event string) {
	w.Header().Set(headerHXTriggerAfterSwap, event)
}
