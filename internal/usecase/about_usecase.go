package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/upload"
)

type aboutUsecase struct {
	aboutRepo domain.AboutRepository
	userRepo  domain.UserRepository
	storage   upload.Storage
}

func NewAboutUsecase(aboutRepo domain.AboutRepository, userRepo domain.UserRepository, storage upload.Storage) domain.AboutUsecase {
	return &aboutUsecase{aboutRepo: aboutRepo, userRepo: userRepo, storage: storage}
}

func (uc *aboutUsecase) CreateOrUpdate(ctx context.Context, userID string, input domain.AboutUpsert, image *domain.UploadFile) (*domain.About, error) {
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.aboutRepo.GetByProfileID(ctx, profile.ID)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
			return nil, err
		}
		existing = nil
	}

	var imageURL *string
	if image != nil {
		result, err := uc.storage.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		imageURL = &result.URL
	}

	now := time.Now()
	if existing == nil {
		about := &domain.About{
			ID:        uuid.NewString(),
			ProfileID: profile.ID,
			Title:     input.Title,
			Content:   input.Content,
			Image:     imageURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.aboutRepo.Create(ctx, about); err != nil {
			uc.removeImage(ctx, imageURL)
			return nil, err
		}
		return about, nil
	}

	oldImage := existing.Image
	existing.Title = input.Title
	existing.Content = input.Content
	if imageURL != nil {
		existing.Image = imageURL
	}
	existing.UpdatedAt = now

	if err := uc.aboutRepo.Update(ctx, existing); err != nil {
		uc.removeImage(ctx, imageURL)
		return nil, err
	}
	if imageURL != nil {
		uc.removeImage(ctx, oldImage)
	}
	return existing, nil
}

func (uc *aboutUsecase) GetByProfile(ctx context.Context, profileID string) (*domain.About, error) {
	return uc.aboutRepo.GetByProfileID(ctx, profileID)
}

func (uc *aboutUsecase) Update(ctx context.Context, userID string, upd domain.AboutUpdate, image *domain.UploadFile) (*domain.About, error) {
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}
	about, err := uc.aboutRepo.GetByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		about.Title = *upd.Title
	}
	if upd.Content != nil {
		about.Content = *upd.Content
	}

	oldImage := about.Image
	if image != nil {
		result, err := uc.storage.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		about.Image = &result.URL
	}
	about.UpdatedAt = time.Now()

	if err := uc.aboutRepo.Update(ctx, about); err != nil {
		if image != nil {
			uc.removeImage(ctx, about.Image)
		}
		return nil, err
	}
	if image != nil {
		uc.removeImage(ctx, oldImage)
	}
	return about, nil
}

func (uc *aboutUsecase) removeImage(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	if err := uc.storage.Delete(ctx, uc.storage.KeyFromURL(*url)); err != nil {
		logger.Log.Warn("failed to delete about image", "url", *url, "error", err)
	}
}

// --- Quotes ---

// ownAbout loads the caller's about section, which every quote operation
// hangs off.
func (uc *aboutUsecase) ownAbout(ctx context.Context, userID string) (*domain.About, error) {
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}
	return uc.aboutRepo.GetByProfileID(ctx, profile.ID)
}

func (uc *aboutUsecase) CreateQuote(ctx context.Context, userID string, input domain.QuoteInput) (*domain.Quote, error) {
	about, err := uc.ownAbout(ctx, userID)
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		ID:        uuid.NewString(),
		AboutID:   about.ID,
		Text:      input.Text,
		Author:    input.Author,
		Source:    input.Source,
		CreatedAt: time.Now(),
	}
	if err := uc.aboutRepo.CreateQuote(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (uc *aboutUsecase) ListQuotes(ctx context.Context, userID string) ([]domain.Quote, error) {
	about, err := uc.ownAbout(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.aboutRepo.FetchQuotes(ctx, about.ID)
}

func (uc *aboutUsecase) UpdateQuote(ctx context.Context, userID, quoteID string, upd domain.QuoteUpdate) (*domain.Quote, error) {
	about, err := uc.ownAbout(ctx, userID)
	if err != nil {
		return nil, err
	}
	quote, err := uc.aboutRepo.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(quote.AboutID, about.ID); err != nil {
		return nil, err
	}

	if upd.Text != nil {
		quote.Text = *upd.Text
	}
	if upd.Author != nil {
		quote.Author = upd.Author
	}
	if upd.Source != nil {
		quote.Source = upd.Source
	}

	if err := uc.aboutRepo.UpdateQuote(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (uc *aboutUsecase) DeleteQuote(ctx context.Context, userID, quoteID string) error {
	about, err := uc.ownAbout(ctx, userID)
	if err != nil {
		return err
	}
	quote, err := uc.aboutRepo.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if err := requireOwner(quote.AboutID, about.ID); err != nil {
		return err
	}
	return uc.aboutRepo.DeleteQuote(ctx, quote.ID)
}
