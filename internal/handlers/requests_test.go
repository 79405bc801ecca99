package handlers

import (
	"encoding/json"
	"testing"
)

func TestFlexIntCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"number", `{"v": 42}`, 42},
		{"numeric string", `{"v": "42"}`, 42},
		{"float", `{"v": 3.9}`, 3},
		{"float string", `{"v": "3.9"}`, 3},
		{"negative", `{"v": -7}`, -7},
		{"empty string", `{"v": ""}`, 0},
		{"null", `{"v": null}`, 0},
		{"garbage", `{"v": "banana"}`, 0},
		{"absent", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V flexInt `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.in), &payload); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.in, err)
			}
			if int(payload.V) != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, payload.V, tt.want)
			}
		})
	}
}
