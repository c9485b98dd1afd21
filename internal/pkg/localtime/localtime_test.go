//go:build unit

package localtime_test

import (
	"encoding/json"
	"testing"
	"time"

	"gearshare/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	ts := localtime.Of(time.Date(2000, 10, 10, 10, 1, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)

	assert.Equal(t, `"2000-10-10T10:01:00"`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "local date-time without offset",
			input: `"2000-10-10T10:01:00"`,
			want:  time.Date(2000, 10, 10, 10, 1, 0, 0, time.UTC),
		},
		{
			name:    "offset is rejected",
			input:   `"2000-10-10T10:01:00+03:00"`,
			wantErr: true,
		},
		{
			name:    "date only is rejected",
			input:   `"2000-10-10"`,
			wantErr: true,
		},
		{
			name:    "not a string",
			input:   `20001010`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got localtime.LocalDateTime
			err := json.Unmarshal([]byte(tc.input), &got)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Time().Equal(tc.want))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := localtime.Of(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC))

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded localtime.LocalDateTime
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.String(), decoded.String())
}
