package domain

import (
	"errors"
	"time"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusApproved  RentalStatus = "approved"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
	RentalStatusRejected  RentalStatus = "rejected"
)

// IsTerminal reports whether no further transitions are permitted.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusCompleted || s == RentalStatusCancelled || s == RentalStatusRejected
}

type RentalAction string

const (
	RentalActionApprove  RentalAction = "approve"
	RentalActionReject   RentalAction = "reject"
	RentalActionCancel   RentalAction = "cancel"
	RentalActionDeliver  RentalAction = "deliver"
	RentalActionComplete RentalAction = "complete"
)

type ActorRole string

const (
	ActorRoleBuyer  ActorRole = "buyer"
	ActorRoleSeller ActorRole = "seller"
)

// ErrInvalidTransition is returned when an action is not allowed from the
// rental's current status or the actor is not authorized to perform it.
var ErrInvalidTransition = errors.New("invalid rental transition")

type Rental struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipment_id"`
	BuyerID     string `json:"buyer_id"`
	// SellerID is a snapshot of the equipment owner at request time.
	SellerID  string       `json:"seller_id"`
	Status    RentalStatus `json:"status"`
	StartDate time.Time    `json:"start_date"`
	EndDate   time.Time    `json:"end_date"`
	// TotalAmountCents is fixed at creation and never recomputed on
	// transitions.
	TotalAmountCents  int64     `json:"total_amount_cents"`
	DeliveryAddress   string    `json:"delivery_address,omitempty"`
	DeliveryLatitude  *float64  `json:"delivery_latitude,omitempty"`
	DeliveryLongitude *float64  `json:"delivery_longitude,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedOn         time.Time `json:"created_on"`
	UpdatedOn         time.Time `json:"updated_on"`

	// Joined fields, populated on list/detail fetches.
	Equipment *Equipment `json:"equipment,omitempty"`
	Buyer     *Profile   `json:"buyer,omitempty"`
	Seller    *Profile   `json:"seller,omitempty"`
}

type transitionKey struct {
	from   RentalStatus
	action RentalAction
	actor  ActorRole
}

// transitions is the full lifecycle table. Anything not listed is invalid,
// which also covers every terminal state.
var transitions = map[transitionKey]RentalStatus{
	{RentalStatusPending, RentalActionApprove, ActorRoleSeller}:  RentalStatusApproved,
	{RentalStatusPending, RentalActionReject, ActorRoleSeller}:   RentalStatusRejected,
	{RentalStatusPending, RentalActionCancel, ActorRoleBuyer}:    RentalStatusCancelled,
	{RentalStatusApproved, RentalActionDeliver, ActorRoleSeller}: RentalStatusActive,
	{RentalStatusActive, RentalActionComplete, ActorRoleBuyer}:   RentalStatusCompleted,
	{RentalStatusActive, RentalActionComplete, ActorRoleSeller}:  RentalStatusCompleted,
}

// NextStatus resolves the transition table without mutating anything.
func NextStatus(from RentalStatus, action RentalAction, actor ActorRole) (RentalStatus, error) {
	next, ok := transitions[transitionKey{from, action, actor}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// ApplyTransition advances the rental's status for the given action and
// actor, or returns ErrInvalidTransition leaving the rental unchanged.
// It intentionally does not check that today falls within the rental period
// before allowing completion.
func (r *Rental) ApplyTransition(action RentalAction, actor ActorRole) error {
	next, err := NextStatus(r.Status, action, actor)
	if err != nil {
		return err
	}
	r.Status = next
	r.UpdatedOn = time.Now()
	return nil
}

// RoleOf maps a party's UUID onto its role in this rental. The empty role is
// returned for strangers.
func (r *Rental) RoleOf(partyID string) ActorRole {
	switch partyID {
	case r.BuyerID:
		return ActorRoleBuyer
	case r.SellerID:
		return ActorRoleSeller
	default:
		return ""
	}
}
