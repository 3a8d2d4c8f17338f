package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   []byte
		wantOK bool
	}{
		{name: "single band", data: []byte{'E', 'Q', 1, 200}, want: []byte{200}, wantOK: true},
		{name: "many bands", data: []byte{'E', 'Q', 1, 0, 64, 128, 192, 255}, want: []byte{0, 64, 128, 192, 255}, wantOK: true},
		{name: "header only", data: []byte{'E', 'Q', 1}},
		{name: "empty", data: nil},
		{name: "wrong marker", data: []byte{'E', 'X', 1, 10}},
		{name: "lowercase marker", data: []byte{'e', 'q', 1, 10}},
		{name: "wrong version", data: []byte{'E', 'Q', 2, 10}},
		{name: "version zero", data: []byte{'E', 'Q', 0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestEncodeProducesParseableFrame(t *testing.T) {
	bands := []byte{1, 2, 3}
	data := Encode(bands)

	require.Len(t, data, HeaderLen+len(bands))
	assert.Equal(t, []byte{'E', 'Q', Version}, data[:HeaderLen])

	got, ok := Parse(data)
	require.True(t, ok)
	assert.Equal(t, bands, got)
}
