package dto

import (
	"time"
	"tripseat/internal/domains/booking/model"
	paymentDto "tripseat/internal/domains/payment/model/dto"
	"tripseat/shared"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	gModel "tripseat/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	TripDateID        string `json:"trip_date_id"       validate:"required,uuid"`
	FullName          string `json:"full_name"          validate:"required,max=100"`
	Email             string `json:"email"              validate:"required,email,max=100"`
	Phone             string `json:"phone"              validate:"required,phone"`
	ParticipantsCount int    `json:"participants_count" validate:"required,min=1,max=50"`
	CouponCode        string `json:"coupon_code"        validate:"omitempty,coupon_code"`
}

// ToModel builds the CREATED booking for an already priced quote.
func (c *CreateBookingRequest) ToModel(quote model.Quote, couponID *string, token string, dueDate time.Time, user string, now time.Time) model.Booking {
	return model.Booking{
		ID:                uuid.NewString(),
		TripDateID:        c.TripDateID,
		ParticipantsCount: c.ParticipantsCount,
		FullName:          c.FullName,
		Email:             c.Email,
		Phone:             c.Phone,
		CouponID:          couponID,
		TotalPrice:        quote.Total,
		DepositAmount:     quote.Deposit,
		RemainingAmount:   quote.Remaining,
		Status:            model.StatusCreated,
		DepositStatus:     model.DepositPending,
		RemainingStatus:   model.RemainingPending,
		RemainingDueDate:  dueDate,
		PaymentToken:      token,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingResponse struct {
	BookingID  string `json:"booking_id"`
	PaymentURL string `json:"payment_url"`
}

type InitiateDepositResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type InitiateRemainingResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type RequestRemainingResponse struct {
	DeliveryID string `json:"delivery_id"`
}

// RemainingView is the public page reached with a payment token. It leaves
// out the booking id and contact details.
type RemainingView struct {
	FullName          string          `json:"full_name"`
	TripDateID        string          `json:"trip_date_id"`
	ParticipantsCount int             `json:"participants_count"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	RemainingStatus   string          `json:"remaining_status"`
	RemainingDueDate  string          `json:"remaining_due_date"`
	Status            string          `json:"status"`
}

func (r *RemainingView) FromModel(model model.Booking) {
	r.FullName = model.FullName
	r.TripDateID = model.TripDateID
	r.ParticipantsCount = model.ParticipantsCount
	r.TotalPrice = model.TotalPrice
	r.DepositAmount = model.DepositAmount
	r.RemainingAmount = model.RemainingAmount
	r.RemainingStatus = model.RemainingStatus
	r.RemainingDueDate = formatDate(&model.RemainingDueDate)
	r.Status = model.Status
}

type BookingResponse struct {
	ID                   string                       `json:"id"`
	TripDateID           string                       `json:"trip_date_id"`
	ParticipantsCount    int                          `json:"participants_count"`
	FullName             string                       `json:"full_name"`
	Email                string                       `json:"email"`
	Phone                string                       `json:"phone"`
	CouponID             *string                      `json:"coupon_id"`
	TotalPrice           decimal.Decimal              `json:"total_price"`
	DepositAmount        decimal.Decimal              `json:"deposit_amount"`
	RemainingAmount      decimal.Decimal              `json:"remaining_amount"`
	Status               string                       `json:"status"`
	DepositStatus        string                       `json:"deposit_status"`
	RemainingStatus      string                       `json:"remaining_status"`
	RemainingDueDate     string                       `json:"remaining_due_date"`
	DepositPaidAt        string                       `json:"deposit_paid_at,omitempty"`
	RemainingPaidAt      string                       `json:"remaining_paid_at,omitempty"`
	CancelledAt          string                       `json:"cancelled_at,omitempty"`
	LastNotificationID   *string                      `json:"last_notification_id"`
	LastNotificationType *string                      `json:"last_notification_type"`
	LastNotificationAt   string                       `json:"last_notification_at,omitempty"`
	Payments             []paymentDto.PaymentResponse `json:"payments,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.TripDateID = model.TripDateID
	r.ParticipantsCount = model.ParticipantsCount
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.CouponID = model.CouponID
	r.TotalPrice = model.TotalPrice
	r.DepositAmount = model.DepositAmount
	r.RemainingAmount = model.RemainingAmount
	r.Status = model.Status
	r.DepositStatus = model.DepositStatus
	r.RemainingStatus = model.RemainingStatus
	r.RemainingDueDate = formatDate(&model.RemainingDueDate)
	r.DepositPaidAt = formatDate(model.DepositPaidAt)
	r.RemainingPaidAt = formatDate(model.RemainingPaidAt)
	r.CancelledAt = formatDate(model.CancelledAt)
	r.LastNotificationID = model.LastNotificationID
	r.LastNotificationType = model.LastNotificationType
	r.LastNotificationAt = formatDate(model.LastNotificationAt)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constant.Empty
	}

	return t.Format(constant.DateFormat)
}
