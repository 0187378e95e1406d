package http

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// formValue accepts a form field sent either as a JSON string or a JSON number.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}
