package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "12h", want: 12 * time.Hour},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "2w", want: 14 * 24 * time.Hour},
		{in: "3m", want: 90 * 24 * time.Hour},
		{in: "0d", want: 0},
		{in: "", wantErr: true},
		{in: "7", wantErr: true},
		{in: "d", wantErr: true},
		{in: "7y", wantErr: true},
		{in: "-1d", wantErr: true},
		{in: "1.5d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBefore(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	got, err := Before(now, "1w")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), got)

	_, err = Before(now, "soon")
	assert.Error(t, err)
}
