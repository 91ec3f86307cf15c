package xhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum64(tt.data))
		})
	}
}

func TestSum64Deterministic(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(t, Sum64(data), Sum64(append([]byte(nil), data...)))
}

func TestSum64DetectsChange(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 5}
	assert.NotEqual(t, Sum64(a), Sum64(b))
}
