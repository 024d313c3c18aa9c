package analyzer

import (
	"testing"

	"mailpilot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSenderExtractor(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		keepAddress bool
		expected    string
	}{
		{
			name:        "name with bracketed address kept",
			text:        "Hi team\nFrom: Prof. Rao <rao@example.edu>\nThanks",
			keepAddress: true,
			expected:    "Prof. Rao <rao@example.edu>",
		},
		{
			name:        "name with bracketed address dropped",
			text:        "Hi team\nFrom: Prof. Rao <rao@example.edu>\nThanks",
			keepAddress: false,
			expected:    "Prof. Rao",
		},
		{
			name:        "plain name only",
			text:        "From: Alice Johnson\nbody follows",
			keepAddress: true,
			expected:    "Alice Johnson",
		},
		{
			name:        "label is case insensitive",
			text:        "fRoM:   Bob\n",
			keepAddress: true,
			expected:    "Bob",
		},
		{
			name:        "label mid line",
			text:        "please reply soon. From: Carol <c@x.io>",
			keepAddress: true,
			expected:    "Carol <c@x.io>",
		},
		{
			name:        "address only",
			text:        "From: <dave@example.com>",
			keepAddress: true,
			expected:    "<dave@example.com>",
		},
		{
			name:        "address only but addresses dropped",
			text:        "From: <dave@example.com>",
			keepAddress: false,
			expected:    models.UnknownSender,
		},
		{
			name:        "no from line",
			text:        "just some text without a header",
			keepAddress: true,
			expected:    models.UnknownSender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := SenderExtractor{KeepAngleBracketEmail: tt.keepAddress}
			assert.Equal(t, tt.expected, extractor.ExtractSender(tt.text))
		})
	}
}
