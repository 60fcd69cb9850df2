package dto

import (
	"tripseat/internal/domains/tripdate/model"
	"tripseat/shared"
	"tripseat/shared/constant"
	gDto "tripseat/shared/dto"
	"tripseat/shared/failure"
	gModel "tripseat/shared/model"
	"tripseat/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTripDateRequest struct {
	TripID           string          `json:"trip_id"            validate:"required,max=64"`
	Date             string          `json:"date"               validate:"required,datetime=2006-01-02"`
	Capacity         int             `json:"capacity"           validate:"required,min=1"`
	PricePerPerson   decimal.Decimal `json:"price_per_person"`
	DepositPerPerson decimal.Decimal `json:"deposit_per_person"`
	Status           string          `json:"status"             validate:"omitempty,oneof=OPEN CLOSED"`
}

func (c *CreateTripDateRequest) ToModel(user string) (model.TripDate, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.TripDate{}, failure.BadRequestFromString("date must match the format 2006-01-02")
	}

	if err = validatePrices(c.PricePerPerson, c.DepositPerPerson); err != nil {
		return model.TripDate{}, err
	}

	status := c.Status
	if status == constant.Empty {
		status = model.StatusOpen
	}

	now := timezone.Now()

	return model.TripDate{
		ID:               uuid.NewString(),
		TripID:           c.TripID,
		Date:             date,
		Capacity:         c.Capacity,
		ReservedSpots:    0,
		PricePerPerson:   c.PricePerPerson,
		DepositPerPerson: c.DepositPerPerson,
		Status:           status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateTripDateRequest is a partial admin edit. Capacity is applied through the
// guarded ledger statement, never through the generic update.
type UpdateTripDateRequest struct {
	Date             *string          `json:"date"               validate:"omitempty,datetime=2006-01-02"`
	Capacity         *int             `json:"capacity"           validate:"omitempty,min=0"`
	PricePerPerson   *decimal.Decimal `json:"price_per_person"`
	DepositPerPerson *decimal.Decimal `json:"deposit_per_person"`
	Status           *string          `json:"status"             validate:"omitempty,oneof=OPEN CLOSED CANCELLED"`
}

// ToFields returns the column updates other than capacity, checked against current.
func (u *UpdateTripDateRequest) ToFields(current model.TripDate, user string) (map[string]any, error) {
	fields := shared.TransformFields(struct {
		Status *string `db:"status"`
	}{Status: u.Status}, user)

	if u.Date != nil {
		date, err := timezone.Parse(constant.DateOnlyFormat, *u.Date)
		if err != nil {
			return nil, failure.BadRequestFromString("date must match the format 2006-01-02")
		}

		fields[model.FieldDate] = date
	}

	price, deposit := current.PricePerPerson, current.DepositPerPerson
	if u.PricePerPerson != nil {
		price = *u.PricePerPerson
		fields[model.FieldPricePerPerson] = price
	}

	if u.DepositPerPerson != nil {
		deposit = *u.DepositPerPerson
		fields[model.FieldDepositPerPerson] = deposit
	}

	if err := validatePrices(price, deposit); err != nil {
		return nil, err
	}

	return fields, nil
}

func validatePrices(price, deposit decimal.Decimal) error {
	if !price.IsPositive() {
		return failure.InvalidPricing("price_per_person must be greater than 0")
	}

	// seats are only committed by a deposit confirmation
	if !deposit.IsPositive() {
		return failure.InvalidPricing("deposit_per_person must be greater than 0")
	}

	if deposit.GreaterThan(price) {
		return failure.InvalidPricing("deposit_per_person must not exceed price_per_person")
	}

	return nil
}

type TripDateResponse struct {
	ID               string          `json:"id"`
	TripID           string          `json:"trip_id"`
	Date             string          `json:"date"`
	Capacity         int             `json:"capacity"`
	ReservedSpots    int             `json:"reserved_spots"`
	Available        int             `json:"available"`
	PricePerPerson   decimal.Decimal `json:"price_per_person"`
	DepositPerPerson decimal.Decimal `json:"deposit_per_person"`
	Status           string          `json:"status"`
	gDto.Metadata
}

func (r *TripDateResponse) FromModel(model model.TripDate) {
	r.ID = model.ID
	r.TripID = model.TripID
	r.Date = timezone.Format(model.Date, constant.DateOnlyFormat)
	r.Capacity = model.Capacity
	r.ReservedSpots = model.ReservedSpots
	r.Available = model.Available()
	r.PricePerPerson = model.PricePerPerson
	r.DepositPerPerson = model.DepositPerPerson
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetTripDatesResponse struct {
	TripDates []TripDateResponse `json:"trip_dates"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetTripDatesResponse) FromModels(models []model.TripDate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.TripDates = make([]TripDateResponse, len(models))
	for i, mod := range models {
		r.TripDates[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	TripDateID    string `json:"trip_date_id"`
	Capacity      int    `json:"capacity"`
	ReservedSpots int    `json:"reserved_spots"`
	Available     int    `json:"available"`
	Status        string `json:"status"`
}

func (a *AvailabilityResponse) FromModel(model model.TripDate) {
	a.TripDateID = model.ID
	a.Capacity = model.Capacity
	a.ReservedSpots = model.ReservedSpots
	a.Available = model.Available()
	a.Status = model.Status
}
