package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-CourtBookingService/internal/usecase/calculate_price"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// ResourcesRequest выбранный инвентарь в запросе
type ResourcesRequest struct {
	Rackets      int `json:"rackets"`
	Shoes        int `json:"shoes"`
	Shuttlecocks int `json:"shuttlecocks"`
}

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	CourtID   int64            `json:"courtId"`
	Date      string           `json:"date"`      // "2025-10-18"
	StartTime string           `json:"startTime"` // "19:00"
	Resources ResourcesRequest `json:"resources"`
	CoachID   *int64           `json:"coachId,omitempty"`
}

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	CourtID   int64                   `json:"courtId"`
	Date      string                  `json:"date"`
	StartTime string                  `json:"startTime"`
	Breakdown domain.PricingBreakdown `json:"breakdown"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() (*calculatePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &calculatePrice.Request{
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
		Resources: domain.ResourceSelection{
			Rackets:      r.Resources.Rackets,
			Shoes:        r.Resources.Shoes,
			Shuttlecocks: r.Resources.Shuttlecocks,
		},
		CoachID: r.CoachID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		CourtID:   resp.CourtID,
		Date:      resp.Date,
		StartTime: resp.StartTime,
		Breakdown: resp.Breakdown,
	}
}
