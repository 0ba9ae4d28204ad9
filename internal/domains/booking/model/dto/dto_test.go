package dto_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/shared/constant"
)

func authenticatedContext(userID int64) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestCreateBookingRequestToModel(t *testing.T) {
	valid := dto.CreateBookingRequest{
		GuestID:      1,
		RoomID:       2,
		CheckInDate:  "2026-09-10T14:00:00Z",
		CheckOutDate: "2026-09-12T11:00:00Z",
		TotalAmount:  480,
	}

	t.Run("defaults to confirmed, unpaid, one guest", func(t *testing.T) {
		booking, err := valid.ToModel(authenticatedContext(9))
		require.NoError(t, err)

		assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, float64(0), booking.PaidAmount)
		assert.Equal(t, 1, booking.NumberOfGuests)
		assert.Equal(t, int64(9), booking.CreatedBy)
	})

	t.Run("explicit guest count is kept", func(t *testing.T) {
		req := valid
		two := 2
		req.NumberOfGuests = &two

		booking, err := req.ToModel(authenticatedContext(9))
		require.NoError(t, err)

		assert.Equal(t, 2, booking.NumberOfGuests)
	})

	t.Run("missing authenticated account fails", func(t *testing.T) {
		_, err := valid.ToModel(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed check-in date is rejected", func(t *testing.T) {
		req := valid
		req.CheckInDate = "next tuesday"

		_, err := req.ToModel(authenticatedContext(9))
		assert.Error(t, err)
	})
}
