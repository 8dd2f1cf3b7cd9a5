// Package flash carries one-time status messages across a redirect.
package flash

import (
	"net/http"
)

// Kind distinguishes success and error messages
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a one-time status message shown after a redirect
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Store keeps at most one pending message per browser
type Store interface {
	// Set replaces any pending message
	Set(w http.ResponseWriter, r *http.Request, msg Message) error

	// Pop returns and clears the pending message; nil when there is none
	Pop(w http.ResponseWriter, r *http.Request) (*Message, error)
}

// Attrs converts a popped message into the view attributes the templates read
func Attrs(msg *Message) map[string]any {
	attrs := map[string]any{}
	if msg == nil {
		return attrs
	}
	switch msg.Kind {
	case KindSuccess:
		attrs["success"] = msg.Text
	case KindError:
		attrs["error"] = msg.Text
	}
	return attrs
}
