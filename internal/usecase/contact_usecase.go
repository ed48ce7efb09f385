package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
	emailSvc    *email.EmailService
}

func NewContactUsecase(contactRepo domain.ContactRepository, emailSvc *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo, emailSvc: emailSvc}
}

// Submit stores the inquiry first; the notification email is best effort and
// never fails the request.
func (uc *contactUsecase) Submit(ctx context.Context, input domain.ContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:        uuid.NewString(),
		ProfileID: input.ProfileID,
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if uc.emailSvc.IsConfigured() {
		go func() {
			err := uc.emailSvc.SendContactEmail(email.ContactEmailData{
				SenderName:  contact.Name,
				SenderEmail: contact.Email,
				Subject:     contact.Subject,
				Message:     contact.Message,
			})
			if err != nil {
				logger.Log.Error("failed to send contact notification", "contact_id", contact.ID, "error", err)
			}
		}()
	}

	return contact, nil
}

func (uc *contactUsecase) List(ctx context.Context, opts domain.PageOptions) ([]domain.Contact, *domain.PageMeta, error) {
	page, limit, offset := opts.Normalize()
	contacts, total, err := uc.contactRepo.Fetch(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return contacts, &domain.PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (uc *contactUsecase) Delete(ctx context.Context, id string) error {
	return uc.contactRepo.Delete(ctx, id)
}

// ExportXLSX renders every submission into a spreadsheet for offline review.
func (uc *contactUsecase) ExportXLSX(ctx context.Context) ([]byte, error) {
	contacts, err := uc.contactRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contacts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Email", "Subject", "Message", "Received At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, c := range contacts {
		values := []any{c.Name, c.Email, c.Subject, c.Message, c.CreatedAt.Format(time.RFC3339)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the message column so exports open readable.
	if err := f.SetColWidth(sheet, "D", "D", 60); err != nil {
		return nil, apperror.Internal(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to write workbook: %w", err))
	}
	return buf.Bytes(), nil
}
