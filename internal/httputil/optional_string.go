package httputil

// Nullable form fields. HTML forms cannot send null, so a blank or missing
// input maps to nil and the column is stored as NULL:
//   - field absent: nil
//   - field present but blank: nil
//   - field with text: pointer to the trimmed text

// OptionalString returns nil for a blank field
func (f *FormValues) OptionalString(key string) *string {
	s := f.String(key)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalInt64 returns nil for a blank field
func (f *FormValues) OptionalInt64(key string) *int64 {
	if f.String(key) == "" {
		return nil
	}
	n := f.Int64(key)
	if f.err != nil {
		return nil
	}
	return &n
}
