package httputil

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"estateadmin/internal/domain/services"
)

// ParseForm limits the request body to maxBytes and parses either a
// url-encoded or a multipart form. Multipart parts above maxBytes spill to
// temp files, which r.MultipartForm.RemoveAll cleans up.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return fmt.Errorf("invalid multipart form: %w", err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	return nil
}

// FormFile returns the file posted under field, or nil when the field is
// absent or the browser sent an empty file input. The returned close func
// is never nil.
func FormFile(r *http.Request, field string) (*services.UploadedFile, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil {
		return nil, noop, nil
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, fmt.Errorf("open %s: %w", field, err)
	}

	return &services.UploadedFile{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, func() { _ = file.Close() }, nil
}

// PathID parses a positive integer path value
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// SeeOther redirects a form POST (or a GET) with 303 so the browser follows with GET
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
