package model

import (
	"time"
	"tripseat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "trip_dates"
	EntityName = "trip_date"

	FieldID               = "id"
	FieldTripID           = "trip_id"
	FieldDate             = "date"
	FieldCapacity         = "capacity"
	FieldReservedSpots    = "reserved_spots"
	FieldPricePerPerson   = "price_per_person"
	FieldDepositPerPerson = "deposit_per_person"
	FieldStatus           = "status"
)

const (
	StatusOpen      = "OPEN"
	StatusClosed    = "CLOSED"
	StatusCancelled = "CANCELLED"
)

type TripDate struct {
	ID               string          `db:"id"`
	TripID           string          `db:"trip_id"`
	Date             time.Time       `db:"date"`
	Capacity         int             `db:"capacity"`
	ReservedSpots    int             `db:"reserved_spots"`
	PricePerPerson   decimal.Decimal `db:"price_per_person"`
	DepositPerPerson decimal.Decimal `db:"deposit_per_person"`
	Status           string          `db:"status"`
	model.Metadata
}

// Available is the number of seats not yet committed, never negative.
func (t TripDate) Available() int {
	return max(t.Capacity-t.ReservedSpots, 0)
}

func (t TripDate) IsOpen() bool {
	return t.Status == StatusOpen
}
