package models

import (
	"bytes"
	"encoding/json"
)

// Text is a generated value. Model replies sometimes carry numbers or booleans
// where text is expected, so any JSON scalar decodes as its literal text and
// null decodes as "". Objects and arrays are kept as compact JSON.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case data[0] == '{' || data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text(buf.String())
	default:
		// numbers and booleans, already validated by the decoder
		*t = Text(data)
	}
	return nil
}
