package mobileid

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support; photos are re-encoded as JPEG
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/mobileid"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/storage"
)

const (
	// maxPhotoBytes caps the raw upload before decoding.
	maxPhotoBytes = 10 * 1024 * 1024

	// Card photos are downscaled to fit this box.
	photoMaxWidth  = 600
	photoMaxHeight = 800

	cardValidity = 2 * 365 * 24 * time.Hour
)

type Service interface {
	IssueCard(ctx context.Context, req mobileid.IssueCardRequest) (mobileid.CardResponse, error)
	GetMyCard(ctx context.Context, userID string) (mobileid.CardResponse, error)
	UploadPhoto(ctx context.Context, userID string, photo io.Reader) (mobileid.CardResponse, error)
	RevokeCard(ctx context.Context, id string) error
}

type serviceImpl struct {
	mobileid.CardRepository
	userRepo user.UserRepository
	storage  storage.FileStorage

	now func() time.Time
}

func NewService(cardRepo mobileid.CardRepository, userRepo user.UserRepository, fileStorage storage.FileStorage) Service {
	return &serviceImpl{
		CardRepository: cardRepo,
		userRepo:       userRepo,
		storage:        fileStorage,
		now:            time.Now,
	}
}

// IssueCard implements Service.
func (s *serviceImpl) IssueCard(ctx context.Context, req mobileid.IssueCardRequest) (mobileid.CardResponse, error) {
	if err := req.Validate(); err != nil {
		return mobileid.CardResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return mobileid.CardResponse{}, err
	}

	if _, err := s.CardRepository.GetActiveCardByUser(ctx, req.UserID); err == nil {
		return mobileid.CardResponse{}, mobileid.ErrCardAlreadyUsed
	} else if !errors.Is(err, mobileid.ErrCardNotFound) {
		return mobileid.CardResponse{}, err
	}

	number, err := generateCardNumber(s.now().UTC())
	if err != nil {
		return mobileid.CardResponse{}, err
	}

	issuedAt := s.now().UTC()
	card := &mobileid.Card{
		UserID:     req.UserID,
		CardNumber: number,
		IssuedAt:   issuedAt,
		ExpiresAt:  issuedAt.Add(cardValidity),
	}
	if err := s.CardRepository.CreateCard(ctx, card); err != nil {
		return mobileid.CardResponse{}, err
	}

	return s.GetMyCard(ctx, req.UserID)
}

// GetMyCard implements Service.
func (s *serviceImpl) GetMyCard(ctx context.Context, userID string) (mobileid.CardResponse, error) {
	card, err := s.CardRepository.GetActiveCardByUser(ctx, userID)
	if err != nil {
		return mobileid.CardResponse{}, err
	}
	if s.now().UTC().After(card.ExpiresAt) {
		return mobileid.CardResponse{}, mobileid.ErrCardExpired
	}
	return mobileid.ToCardResponse(card), nil
}

// UploadPhoto implements Service.
func (s *serviceImpl) UploadPhoto(ctx context.Context, userID string, photo io.Reader) (mobileid.CardResponse, error) {
	card, err := s.CardRepository.GetActiveCardByUser(ctx, userID)
	if err != nil {
		return mobileid.CardResponse{}, err
	}

	buffer, err := io.ReadAll(io.LimitReader(photo, maxPhotoBytes+1))
	if err != nil {
		return mobileid.CardResponse{}, fmt.Errorf("failed to read photo: %w", err)
	}
	if len(buffer) > maxPhotoBytes {
		return mobileid.CardResponse{}, mobileid.ErrPhotoTooLarge
	}

	encoded, err := normalizePhoto(buffer)
	if err != nil {
		return mobileid.CardResponse{}, err
	}

	path := fmt.Sprintf("cards/%s/%s.jpg", userID, uuid.New().String())
	storedPath, err := s.storage.Upload(ctx, bytes.NewReader(encoded), path, "image/jpeg")
	if err != nil {
		return mobileid.CardResponse{}, fmt.Errorf("failed to upload card photo: %w", err)
	}

	url, err := s.storage.GetURL(ctx, storedPath, 0)
	if err != nil {
		return mobileid.CardResponse{}, err
	}
	if err := s.CardRepository.UpdateCardPhoto(ctx, card.ID, url); err != nil {
		return mobileid.CardResponse{}, err
	}

	return s.GetMyCard(ctx, userID)
}

// RevokeCard implements Service.
func (s *serviceImpl) RevokeCard(ctx context.Context, id string) error {
	if _, err := s.CardRepository.GetCardByID(ctx, id); err != nil {
		return err
	}
	return s.CardRepository.RevokeCard(ctx, id)
}

// normalizePhoto decodes the upload, downscales it to the card photo box
// and re-encodes it as JPEG.
func normalizePhoto(buffer []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, mobileid.ErrInvalidPhoto
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > photoMaxWidth || height > photoMaxHeight {
		ratio := min(
			float64(photoMaxWidth)/float64(width),
			float64(photoMaxHeight)/float64(height),
		)
		img = resizeImage(img, int(float64(width)*ratio), int(float64(height)*ratio))
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode card photo: %w", err)
	}
	return buf.Bytes(), nil
}

func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// generateCardNumber builds a card number like RSV-2026-483920 with a
// random 6-digit suffix.
func generateCardNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate card number: %w", err)
	}
	return fmt.Sprintf("RSV-%d-%06d", now.Year(), n.Int64()), nil
}
