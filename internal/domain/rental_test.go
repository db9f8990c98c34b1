package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name   string
		from   RentalStatus
		action RentalAction
		actor  ActorRole
		want   RentalStatus
		ok     bool
	}{
		{"Seller approves pending", RentalStatusPending, RentalActionApprove, ActorRoleSeller, RentalStatusApproved, true},
		{"Seller rejects pending", RentalStatusPending, RentalActionReject, ActorRoleSeller, RentalStatusRejected, true},
		{"Buyer cancels pending", RentalStatusPending, RentalActionCancel, ActorRoleBuyer, RentalStatusCancelled, true},
		{"Seller delivers approved", RentalStatusApproved, RentalActionDeliver, ActorRoleSeller, RentalStatusActive, true},
		{"Buyer completes active", RentalStatusActive, RentalActionComplete, ActorRoleBuyer, RentalStatusCompleted, true},
		{"Seller completes active", RentalStatusActive, RentalActionComplete, ActorRoleSeller, RentalStatusCompleted, true},

		{"Buyer cannot approve", RentalStatusPending, RentalActionApprove, ActorRoleBuyer, "", false},
		{"Seller cannot cancel", RentalStatusPending, RentalActionCancel, ActorRoleSeller, "", false},
		{"Buyer cannot deliver", RentalStatusApproved, RentalActionDeliver, ActorRoleBuyer, "", false},
		{"Cannot deliver pending", RentalStatusPending, RentalActionDeliver, ActorRoleSeller, "", false},
		{"Cannot complete approved", RentalStatusApproved, RentalActionComplete, ActorRoleBuyer, "", false},
		{"Cannot cancel approved", RentalStatusApproved, RentalActionCancel, ActorRoleBuyer, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := NextStatus(tc.from, tc.action, tc.actor)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, next)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestNextStatus_TerminalStatesAreFrozen(t *testing.T) {
	terminals := []RentalStatus{RentalStatusCompleted, RentalStatusCancelled, RentalStatusRejected}
	actions := []RentalAction{RentalActionApprove, RentalActionReject, RentalActionCancel, RentalActionDeliver, RentalActionComplete}
	actors := []ActorRole{ActorRoleBuyer, ActorRoleSeller}

	for _, from := range terminals {
		assert.True(t, from.IsTerminal())
		for _, action := range actions {
			for _, actor := range actors {
				_, err := NextStatus(from, action, actor)
				assert.ErrorIs(t, err, ErrInvalidTransition,
					"from=%s action=%s actor=%s", from, action, actor)
			}
		}
	}
}

func TestApplyTransition(t *testing.T) {
	t.Run("Happy path through the full lifecycle", func(t *testing.T) {
		rt := &Rental{Status: RentalStatusPending}

		assert.NoError(t, rt.ApplyTransition(RentalActionApprove, ActorRoleSeller))
		assert.Equal(t, RentalStatusApproved, rt.Status)

		assert.NoError(t, rt.ApplyTransition(RentalActionDeliver, ActorRoleSeller))
		assert.Equal(t, RentalStatusActive, rt.Status)

		assert.NoError(t, rt.ApplyTransition(RentalActionComplete, ActorRoleBuyer))
		assert.Equal(t, RentalStatusCompleted, rt.Status)
	})

	t.Run("Invalid action leaves status unchanged", func(t *testing.T) {
		rt := &Rental{Status: RentalStatusPending}
		err := rt.ApplyTransition(RentalActionComplete, ActorRoleBuyer)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, RentalStatusPending, rt.Status)
	})
}

func TestRoleOf(t *testing.T) {
	rt := &Rental{BuyerID: "buyer-uuid", SellerID: "seller-uuid"}

	assert.Equal(t, ActorRoleBuyer, rt.RoleOf("buyer-uuid"))
	assert.Equal(t, ActorRoleSeller, rt.RoleOf("seller-uuid"))
	assert.Equal(t, ActorRole(""), rt.RoleOf("stranger-uuid"))
}
