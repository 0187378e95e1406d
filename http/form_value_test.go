package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body     string
		expected formValue
	}{
		{`{"value": "10000"}`, "10000"},
		{`{"value": 10000}`, "10000"},
		{`{"value": 2.5}`, "2.5"},
		{`{"value": null}`, ""},
		{`{"value": "abc"}`, "abc"},
		{`{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req setFieldRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.expected, req.Value)
		})
	}
}

func TestFormValue_RejectsOtherTypes(t *testing.T) {
	var req setFieldRequest
	assert.Error(t, json.Unmarshal([]byte(`{"value": true}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"value": [1]}`), &req))
}
