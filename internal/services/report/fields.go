package report

// FieldSet is the template context of one document
type FieldSet map[string]any

// Merge layers generated values, then the summary under summaryKey, then authoritative values.
// Later layers win, so caller-supplied data is never replaced by generated text.
// An empty summaryKey skips the summary layer.
func Merge(generated FieldSet, summaryKey, summary string, authoritative FieldSet) FieldSet {
	out := make(FieldSet, len(generated)+len(authoritative)+1)
	for k, v := range generated {
		out[k] = v
	}
	if summaryKey != "" {
		out[summaryKey] = summary
	}
	for k, v := range authoritative {
		out[k] = v
	}
	return out
}

// String returns the string value of key, or ""
func (f FieldSet) String(key string) string {
	s, _ := f[key].(string)
	return s
}

func fromStrings(m map[string]string) FieldSet {
	out := make(FieldSet, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
