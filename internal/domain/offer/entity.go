package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotApproved        = errors.New("offer is not approved")
	ErrWindowNotStarted   = errors.New("offer window has not started")
	ErrWindowElapsed      = errors.New("offer window has elapsed")
	ErrInsufficientSupply = errors.New("insufficient coupon supply")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidCapacity    = errors.New("capacity must be at least 1")
	ErrCounterDrift       = errors.New("issued counter out of range")
)

type Offer struct {
	id        uuid.UUID
	companyID uuid.UUID
	title     string
	discount  Discount
	unitCost  decimal.Decimal
	window    Window
	capacity  int32
	issued    int32
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewOffer(
	id, companyID uuid.UUID,
	title string,
	discount Discount,
	unitCost decimal.Decimal,
	window Window,
	capacity int32,
	status Status,
) (*Offer, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Offer{
		id:        id,
		companyID: companyID,
		title:     title,
		discount:  discount,
		unitCost:  unitCost,
		window:    window,
		capacity:  capacity,
		issued:    0,
		status:    status,
	}, nil
}

// Reconstruct rebuilds an offer from persisted state without revalidating it.
func Reconstruct(
	id, companyID uuid.UUID,
	title string,
	discount Discount,
	unitCost decimal.Decimal,
	window Window,
	capacity, issued int32,
	status Status,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:        id,
		companyID: companyID,
		title:     title,
		discount:  discount,
		unitCost:  unitCost,
		window:    window,
		capacity:  capacity,
		issued:    issued,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Remaining never reports a negative count even if the persisted counter
// drifted past capacity.
func (o *Offer) Remaining() int32 {
	remaining := o.capacity - o.issued
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (o *Offer) IsClaimableAt(now time.Time) bool {
	return o.ClaimableAt(now) == nil
}

// ClaimableAt reports why an offer cannot be claimed right now, or nil.
func (o *Offer) ClaimableAt(now time.Time) error {
	if o.status != StatusApproved {
		return ErrNotApproved
	}
	if now.Before(o.window.Start()) {
		return ErrWindowNotStarted
	}
	if o.window.HasElapsed(now) {
		return ErrWindowElapsed
	}
	if o.Remaining() == 0 {
		return ErrInsufficientSupply
	}
	return nil
}

// Allocate consumes quantity units of supply. The caller is responsible for
// making the surrounding read-check-write atomic; Allocate only enforces the
// counter invariant 0 <= issued <= capacity.
func (o *Offer) Allocate(quantity int32) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if o.issued < 0 || o.issued > o.capacity {
		return ErrCounterDrift
	}
	if o.capacity-o.issued < quantity {
		return ErrInsufficientSupply
	}
	o.issued += quantity
	return nil
}

func (o *Offer) ID() uuid.UUID             { return o.id }
func (o *Offer) CompanyID() uuid.UUID      { return o.companyID }
func (o *Offer) Title() string             { return o.title }
func (o *Offer) Discount() Discount        { return o.discount }
func (o *Offer) UnitCost() decimal.Decimal { return o.unitCost }
func (o *Offer) Window() Window            { return o.window }
func (o *Offer) Capacity() int32           { return o.capacity }
func (o *Offer) Issued() int32             { return o.issued }
func (o *Offer) Status() Status            { return o.status }
func (o *Offer) CreatedAt() time.Time      { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time      { return o.updatedAt }

// DaysRemaining is the number of whole-or-partial days until end, rounded
// up. Zero or negative means the window has ended.
func DaysRemaining(end, now time.Time) int {
	const day = 24 * time.Hour
	diff := end.Sub(now)
	days := diff / day
	if diff%day > 0 {
		days++
	}
	return int(days)
}
