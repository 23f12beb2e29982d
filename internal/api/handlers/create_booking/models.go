package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// ResourcesModel выбранный инвентарь
type ResourcesModel struct {
	Rackets      int `json:"rackets"`
	Shoes        int `json:"shoes"`
	Shuttlecocks int `json:"shuttlecocks"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID     int64          `json:"courtId"`
	BookingDate string         `json:"bookingDate"` // "2025-10-18"
	StartTime   string         `json:"startTime"`   // "19:00"
	Resources   ResourcesModel `json:"resources"`
	CoachID     *int64         `json:"coachId,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64          `json:"id"`
	Ref             string         `json:"ref"`
	UserID          int64          `json:"userId"`
	CourtID         int64          `json:"courtId"`
	BookingDate     string         `json:"bookingDate"`
	StartTime       string         `json:"startTime"`
	DurationMinutes int            `json:"durationMinutes"`
	Status          string         `json:"status"`
	Resources       ResourcesModel `json:"resources"`
	CoachID         *int64         `json:"coachId,omitempty"`

	CourtName  string   `json:"courtName"`
	CoachName  *string  `json:"coachName,omitempty"`
	CoachRate  *float64 `json:"coachRate,omitempty"`
	MemberName *string  `json:"memberName,omitempty"`
	Notes      *string  `json:"notes,omitempty"`

	Breakdown domain.PricingBreakdown `json:"breakdown"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		Date:      bookingDate,
		StartTime: types.TimeString(r.StartTime),
		Resources: domain.ResourceSelection{
			Rackets:      r.Resources.Rackets,
			Shoes:        r.Resources.Shoes,
			Shuttlecocks: r.Resources.Shuttlecocks,
		},
		CoachID: r.CoachID,
		Notes:   r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Ref:             resp.Ref,
		UserID:          resp.UserID,
		CourtID:         resp.CourtID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Resources: ResourcesModel{
			Rackets:      resp.Resources.Rackets,
			Shoes:        resp.Resources.Shoes,
			Shuttlecocks: resp.Resources.Shuttlecocks,
		},
		CoachID:    resp.CoachID,
		CourtName:  resp.CourtName,
		CoachName:  resp.CoachName,
		CoachRate:  resp.CoachRate,
		MemberName: resp.MemberName,
		Notes:      resp.Notes,
		Breakdown:  resp.Breakdown,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
