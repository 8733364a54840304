package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"cat", "CAT", true},
		{"  Dog \r", "DOG", true},
		{"café", "CAFE", true},
		{"Ångström", "ANGSTROM", true},
		{"cat's", "CAT", true},
		{"don’t", "DON", true},
		{"'tis", "", false},
		{"", "", false},
		{"   ", "", false},
		{"e-mail", "", false},
		{"R2D2", "", false},
		{"straße", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeWord(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
