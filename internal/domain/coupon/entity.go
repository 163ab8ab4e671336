package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotOwner        = errors.New("coupon belongs to another user")
	ErrAlreadyRedeemed = errors.New("coupon already redeemed")
	ErrExpired         = errors.New("coupon has expired")
	ErrInvalidState    = errors.New("invalid coupon state")
)

// State is the persisted lifecycle of a coupon: assigned -> redeemed.
// Expiry is never persisted; it is derived from the owning offer's window
// (see DisplayStateAt).
type State string

const (
	StateAssigned State = "assigned"
	StateRedeemed State = "redeemed"
)

func NewState(raw string) (State, error) {
	switch State(raw) {
	case StateAssigned, StateRedeemed:
		return State(raw), nil
	default:
		return "", ErrInvalidState
	}
}

func (s State) String() string {
	return string(s)
}

// DisplayState adds the derived expired view on top of the persisted states.
type DisplayState string

const (
	DisplayAssigned DisplayState = "assigned"
	DisplayRedeemed DisplayState = "redeemed"
	DisplayExpired  DisplayState = "expired"
)

func (s DisplayState) String() string {
	return string(s)
}

type Coupon struct {
	id         uuid.UUID
	code       Code
	offerID    uuid.UUID
	userID     uuid.UUID
	state      State
	unitCost   decimal.Decimal
	assignedAt time.Time
	redeemedAt *time.Time
	createdAt  time.Time
}

// Mint creates a freshly assigned coupon. Only the allocator calls this,
// inside its claim transaction.
func Mint(code Code, offerID, userID uuid.UUID, unitCost decimal.Decimal, now time.Time) *Coupon {
	return &Coupon{
		id:         uuid.New(),
		code:       code,
		offerID:    offerID,
		userID:     userID,
		state:      StateAssigned,
		unitCost:   unitCost,
		assignedAt: now,
		createdAt:  now,
	}
}

func Reconstruct(
	id uuid.UUID,
	code Code,
	offerID, userID uuid.UUID,
	state State,
	unitCost decimal.Decimal,
	assignedAt time.Time,
	redeemedAt *time.Time,
	createdAt time.Time,
) *Coupon {
	return &Coupon{
		id:         id,
		code:       code,
		offerID:    offerID,
		userID:     userID,
		state:      state,
		unitCost:   unitCost,
		assignedAt: assignedAt,
		redeemedAt: redeemedAt,
		createdAt:  createdAt,
	}
}

// Redeem moves the coupon to its terminal state. Redemption is permanent:
// a second call fails with ErrAlreadyRedeemed and leaves redeemedAt intact.
// Redeeming a coupon whose offer window elapsed (offerEnd before now) is
// rejected with ErrExpired.
func (c *Coupon) Redeem(requestingUserID uuid.UUID, offerEnd, now time.Time) error {
	if c.userID != requestingUserID {
		return ErrNotOwner
	}
	if c.state == StateRedeemed {
		return ErrAlreadyRedeemed
	}
	if offerEnd.Before(now) {
		return ErrExpired
	}
	c.state = StateRedeemed
	redeemedAt := now
	c.redeemedAt = &redeemedAt
	return nil
}

// DisplayStateAt is the user-facing state: a persisted redemption wins,
// then an elapsed offer window reads as expired, otherwise assigned.
func (c *Coupon) DisplayStateAt(offerEnd, now time.Time) DisplayState {
	if c.state == StateRedeemed {
		return DisplayRedeemed
	}
	if offerEnd.Before(now) {
		return DisplayExpired
	}
	return DisplayAssigned
}

func (c *Coupon) IsRedeemable(offerEnd, now time.Time) bool {
	return c.DisplayStateAt(offerEnd, now) == DisplayAssigned
}

func (c *Coupon) ID() uuid.UUID             { return c.id }
func (c *Coupon) Code() Code                { return c.code }
func (c *Coupon) OfferID() uuid.UUID        { return c.offerID }
func (c *Coupon) UserID() uuid.UUID         { return c.userID }
func (c *Coupon) State() State              { return c.state }
func (c *Coupon) UnitCost() decimal.Decimal { return c.unitCost }
func (c *Coupon) AssignedAt() time.Time     { return c.assignedAt }
func (c *Coupon) RedeemedAt() *time.Time    { return c.redeemedAt }
func (c *Coupon) CreatedAt() time.Time      { return c.createdAt }
