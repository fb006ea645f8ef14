package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_Unmarshal(t *testing.T) {
	type payload struct {
		Percent FlexString `json:"percent"`
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json string", `{"percent":"42"}`, "42"},
		{"json number", `{"percent":42}`, "42"},
		{"decimal number kept verbatim", `{"percent":50.5}`, "50.5"},
		{"null", `{"percent":null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.want, p.Percent.String())
		})
	}
}
