package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// flexString accepts a JSON string or a JSON number and keeps its text.
// null decodes to the empty string. Clients send PINs and amounts both ways.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }
