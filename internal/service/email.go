package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"medrent-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour MedRent account is ready. You can now list equipment or request rentals from other hospitals.\n\nBest regards,\nThe MedRent Team", name)
	return s.send(ctx, email, "Welcome to MedRent", body)
}

func (s *emailService) SendRentalRequestNotification(ctx context.Context, sellerEmail, buyerName, equipmentName string) error {
	body := fmt.Sprintf("Hello,\n\n%s requested to rent your %s. Review the request on your dashboard to approve or reject it.\n\nBest regards,\nThe MedRent Team", buyerName, equipmentName)
	return s.send(ctx, sellerEmail, fmt.Sprintf("New rental request for %s", equipmentName), body)
}

func (s *emailService) SendRentalApprovalNotification(ctx context.Context, buyerEmail, equipmentName, sellerName string) error {
	body := fmt.Sprintf("Hello,\n\nYour rental request for %s was approved by %s. Delivery will be arranged to your pinned location.\n\nBest regards,\nThe MedRent Team", equipmentName, sellerName)
	return s.send(ctx, buyerEmail, fmt.Sprintf("Rental approved: %s", equipmentName), body)
}

func (s *emailService) SendRentalRejectionNotification(ctx context.Context, buyerEmail, equipmentName, sellerName string) error {
	body := fmt.Sprintf("Hello,\n\nYour rental request for %s was rejected by %s.\n\nBest regards,\nThe MedRent Team", equipmentName, sellerName)
	return s.send(ctx, buyerEmail, fmt.Sprintf("Rental rejected: %s", equipmentName), body)
}

func (s *emailService) SendRentalCancellationNotification(ctx context.Context, sellerEmail, buyerName, equipmentName string) error {
	body := fmt.Sprintf("Hello,\n\n%s cancelled the rental request for %s.\n\nBest regards,\nThe MedRent Team", buyerName, equipmentName)
	return s.send(ctx, sellerEmail, fmt.Sprintf("Rental cancelled: %s", equipmentName), body)
}

func (s *emailService) SendRentalDeliveryNotification(ctx context.Context, buyerEmail, equipmentName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has been marked as delivered. The rental is now active.\n\nBest regards,\nThe MedRent Team", equipmentName)
	return s.send(ctx, buyerEmail, fmt.Sprintf("Equipment delivered: %s", equipmentName), body)
}

func (s *emailService) SendRentalCompletionNotification(ctx context.Context, email, equipmentName string, amountCents int64) error {
	body := fmt.Sprintf("Hello,\n\nThe rental of %s has been completed. Total amount: $%.2f.\n\nBest regards,\nThe MedRent Team", equipmentName, float64(amountCents)/100)
	return s.send(ctx, email, fmt.Sprintf("Rental completed: %s", equipmentName), body)
}

func (s *emailService) SendRentalEndingReminder(ctx context.Context, email, equipmentName, endDate string) error {
	body := fmt.Sprintf("Hello,\n\nThe rental of %s ends on %s. Please arrange the return hand-off.\n\nBest regards,\nThe MedRent Team", equipmentName, endDate)
	return s.send(ctx, email, fmt.Sprintf("Rental ending soon: %s", equipmentName), body)
}

func (s *emailService) SendPendingRequestDigest(ctx context.Context, email string, count int64) error {
	body := fmt.Sprintf("Hello,\n\nYou have %d rental request(s) waiting for your review. Approve or reject them from your dashboard so buyers are not left waiting.\n\nBest regards,\nThe MedRent Team", count)
	return s.send(ctx, email, fmt.Sprintf("%d rental request(s) awaiting your review", count), body)
}
