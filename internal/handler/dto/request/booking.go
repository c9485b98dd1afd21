package request

import (
	"gearshare/internal/pkg/localtime"
	"gearshare/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ItemID int64                   `json:"itemId" binding:"required"`
	Start  localtime.LocalDateTime `json:"start" binding:"required"`
	End    localtime.LocalDateTime `json:"end" binding:"required"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ItemID: r.ItemID,
		Start:  r.Start.Time(),
		End:    r.End.Time(),
	}
}
