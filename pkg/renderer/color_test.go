package renderer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    Color
		wantErr bool
	}{
		{name: "named", raw: `"green"`, want: "green"},
		{name: "rgb", raw: `[255, 160, 0]`, want: "rgb(255,160,0)"},
		{name: "rgba", raw: `[255, 255, 255, 0.85]`, want: "rgba(255,255,255,0.85)"},
		{name: "rgba opaque", raw: `[0,0,0,1]`, want: "rgba(0,0,0,1)"},
		{name: "too short", raw: `[1, 2]`, wantErr: true},
		{name: "channel out of range", raw: `[256, 0, 0]`, wantErr: true},
		{name: "opacity out of range", raw: `[1, 2, 3, 1.5]`, wantErr: true},
		{name: "number", raw: `12`, wantErr: true},
		{name: "empty", raw: ``, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorUnmarshalJSON(t *testing.T) {
	var palette []Color
	require.NoError(t, json.Unmarshal([]byte(`["red", [1,2,3], [4,5,6,0.5]]`), &palette))
	assert.Equal(t, []Color{"red", "rgb(1,2,3)", "rgba(4,5,6,0.5)"}, palette)
}
