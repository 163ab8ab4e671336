package offer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus          = errors.New("invalid offer status")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount must be either fixed amount or percentage")
	ErrInvalidWindow          = errors.New("offer window end must be after start")
)

// Status is the authoring lifecycle of an offer. Only approved offers are
// ever claimable; the authoring workflow itself lives outside this service.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Discount is either a percentage off or a fixed amount off, never both.
type Discount struct {
	amountOff  *decimal.Decimal
	percentOff *float64
}

func NewFixedDiscount(amountOff decimal.Decimal) (Discount, error) {
	if amountOff.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOff: &amountOff}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOff *decimal.Decimal, percentOff *float64) (Discount, error) {
	switch {
	case amountOff != nil && percentOff != nil:
		return Discount{}, ErrAmbiguousDiscount
	case amountOff != nil:
		return NewFixedDiscount(*amountOff)
	case percentOff != nil:
		return NewPercentageDiscount(*percentOff)
	default:
		return Discount{}, ErrAmbiguousDiscount
	}
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountOff() decimal.Decimal {
	if d.amountOff != nil {
		return *d.amountOff
	}
	return decimal.Zero
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// Window is the validity interval of an offer, inclusive at both ends.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

func (w Window) HasElapsed(t time.Time) bool {
	return t.After(w.end)
}
