package jobs

import (
	"context"
	"fmt"
	"time"

	"medrent-backend/internal/logger"
)

// SendRentalEndingReminders emails buyers whose active rentals end within
// the next 24 hours.
func (jr *JobRunner) SendRentalEndingReminders() {
	jr.runWithRecovery("SendRentalEndingReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(24 * time.Hour)

		rentals, err := jr.store.RentalRepository.ListActiveEndingBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list ending rentals", "error", err)
			return
		}

		sent := 0
		for _, rental := range rentals {
			buyer, err := jr.store.UserRepository.GetByID(ctx, rental.BuyerID)
			if err != nil {
				logger.Error("Failed to load buyer for reminder",
					"rental_id", rental.ID, "buyer_id", rental.BuyerID, "error", err)
				continue
			}

			equipmentName := fmt.Sprintf("equipment #%d", rental.EquipmentID)
			if rental.Equipment != nil {
				equipmentName = rental.Equipment.Name
			}

			endDate := rental.EndDate.Format("2006-01-02")
			if err := jr.services.Email.SendRentalEndingReminder(ctx, buyer.Email, equipmentName, endDate); err != nil {
				logger.Error("Failed to send ending reminder",
					"rental_id", rental.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Rental ending reminders sent", "count", sent, "candidates", len(rentals))
	})
}

// SendPendingRequestDigest emails each seller a count of rental requests
// that have been waiting on them for more than a day.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", func() {
		ctx := context.Background()

		query := `
			SELECT u.email, COUNT(r.id)
			FROM rentals r
			JOIN users u ON u.id = r.seller_id
			WHERE r.status = 'pending'
			  AND r.created_on < $1
			GROUP BY u.email
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Add(-24*time.Hour))
		if err != nil {
			logger.Error("Failed to query pending requests", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var email string
			var count int64
			if err := rows.Scan(&email, &count); err != nil {
				logger.Error("Failed to scan pending digest row", "error", err)
				continue
			}

			if err := jr.services.Email.SendPendingRequestDigest(ctx, email, count); err != nil {
				logger.Error("Failed to send pending digest", "email", email, "error", err)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating pending digest rows", "error", err)
			return
		}

		logger.Info("Pending request digests sent", "count", sent)
	})
}
