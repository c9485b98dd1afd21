//go:build unit

package booking_test

import (
	"testing"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    booking.Status
		wantErr bool
	}{
		{name: "waiting", input: "WAITING", want: booking.StatusWaiting},
		{name: "approved", input: "APPROVED", want: booking.StatusApproved},
		{name: "rejected", input: "REJECTED", want: booking.StatusRejected},
		{name: "lowercase is rejected", input: "waiting", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown value", input: "CANCELED", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.ParseStatus(tc.input)

			if tc.wantErr {
				require.ErrorIs(t, err, booking.ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecide(t *testing.T) {
	assert.Equal(t, booking.StatusApproved, booking.Decide(true))
	assert.Equal(t, booking.StatusRejected, booking.Decide(false))
}
