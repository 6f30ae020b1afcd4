package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callbridge/callbridge/internal/phone"
)

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		region   string
		expected string
		ok       bool
	}{
		{
			name:     "national format with punctuation",
			input:    "(206) 555-0100",
			region:   "US",
			expected: "+12065550100",
			ok:       true,
		},
		{
			name:     "already E.164",
			input:    "+12065550100",
			region:   "US",
			expected: "+12065550100",
			ok:       true,
		},
		{
			name:     "E.164 overrides default region",
			input:    "+442071838750",
			region:   "US",
			expected: "+442071838750",
			ok:       true,
		},
		{
			name:     "surrounding whitespace",
			input:    "  206-555-0100  ",
			region:   "US",
			expected: "+12065550100",
			ok:       true,
		},
		{
			name:   "empty input",
			input:  "",
			region: "US",
			ok:     false,
		},
		{
			name:   "too short to be valid",
			input:  "555",
			region: "US",
			ok:     false,
		},
		{
			name:   "not a number",
			input:  "call me maybe",
			region: "US",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := phone.NormalizeE164(tt.input, tt.region)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
