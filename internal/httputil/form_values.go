package httputil

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// FormValues reads typed values from a parsed form and collects the first
// conversion error so callers can check once after binding every field.
type FormValues struct {
	r   *http.Request
	err error
}

// NewFormValues wraps a request whose form has already been parsed
func NewFormValues(r *http.Request) *FormValues {
	return &FormValues{r: r}
}

// Err returns the first conversion error
func (f *FormValues) Err() error { return f.err }

// String returns the trimmed value
func (f *FormValues) String(key string) string {
	return strings.TrimSpace(f.r.PostFormValue(key))
}

// Raw returns the value untouched; passwords must not be trimmed
func (f *FormValues) Raw(key string) string {
	return f.r.PostFormValue(key)
}

func (f *FormValues) Int64(key string) int64 {
	s := f.String(key)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f.fail(key, s)
		return 0
	}
	return n
}

func (f *FormValues) Int(key string) int {
	s := f.String(key)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f.fail(key, s)
		return 0
	}
	return n
}

func (f *FormValues) Float64(key string) float64 {
	s := f.String(key)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.fail(key, s)
		return 0
	}
	return n
}

func (f *FormValues) fail(key, value string) {
	if f.err == nil {
		f.err = fmt.Errorf("invalid value %q for %s", value, key)
	}
}
