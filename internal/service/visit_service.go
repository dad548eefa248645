package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/apperror"
	"anoa.com/makanlist/pkg/storage"
)

type VisitService interface {
	CreateVisit(userID int, input dto.CreateVisitInput) (*model.Visit, error)
	GetVisit(visitID, userID int) (*store.VisitDetails, error)
	GenerateSummary(ctx context.Context, visitID, userID int) (string, error)
	AddNote(visitID, userID int, input dto.CreateNoteInput) (*model.Note, error)
	AddPhoto(ctx context.Context, visitID, userID int, file *multipart.FileHeader) (*model.Photo, error)
}

type visitService struct {
	store        *store.Store
	llm          LLMProvider
	imageStorage storage.ImageStorage
	redisClient  *redis.Client
	summaryLimit time.Duration
	sanitizer    *bluemonday.Policy
}

func NewVisitService(st *store.Store, llm LLMProvider, imageStorage storage.ImageStorage, redisClient *redis.Client, summaryLimit time.Duration) VisitService {
	return &visitService{
		store:        st,
		llm:          llm,
		imageStorage: imageStorage,
		redisClient:  redisClient,
		summaryLimit: summaryLimit,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *visitService) CreateVisit(userID int, input dto.CreateVisitInput) (*model.Visit, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, apperror.New(400, "format tanggal harus YYYY-MM-DD", apperror.ErrInvalidInput)
	}

	visit := s.store.CreateVisit(store.CreateVisitParams{
		RestaurantID: input.RestaurantID,
		Date:         date,
		Occasion:     input.Occasion,
	}, userID, input.CollaboratorIDs)
	if visit == nil {
		return nil, apperror.ErrNotFound
	}
	return visit, nil
}

func (s *visitService) GetVisit(visitID, userID int) (*store.VisitDetails, error) {
	details := s.store.GetVisitDetails(visitID, userID)
	if details == nil {
		return nil, apperror.ErrNotFound
	}
	return details, nil
}

// GenerateSummary asks the LLM for a short recap of the visit's notes
// and stores it on the visit. Rate limited per user.
func (s *visitService) GenerateSummary(ctx context.Context, visitID, userID int) (string, error) {
	details := s.store.GetVisitDetails(visitID, userID)
	if details == nil {
		return "", apperror.ErrNotFound
	}
	if s.llm == nil {
		return "", apperror.New(503, "fitur ringkasan AI tidak tersedia", apperror.ErrInternal)
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, userID, "ai_summary", s.summaryLimit)
	if err != nil {
		return "", err
	}
	if !allowed {
		ttl, _ := GetRateLimitTTL(ctx, s.redisClient, userID, "ai_summary")
		return "", apperror.New(429, fmt.Sprintf("coba lagi dalam %.0f detik", ttl.Seconds()), apperror.ErrRateLimitExceeded)
	}

	restaurant := s.store.GetRestaurantDetails(details.RestaurantID, userID)
	restaurantName := "the restaurant"
	if restaurant != nil {
		restaurantName = restaurant.Name
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize this restaurant visit in two or three warm, casual sentences.\n")
	fmt.Fprintf(&sb, "Restaurant: %s\nDate: %s\n", restaurantName, details.Date.Format("2006-01-02"))
	if details.Occasion != nil {
		fmt.Fprintf(&sb, "Occasion: %s\n", *details.Occasion)
	}
	if len(details.Notes) > 0 {
		sb.WriteString("Notes from the group:\n")
		for _, n := range details.Notes {
			fmt.Fprintf(&sb, "- %s: %s\n", n.AuthorName, n.Content)
		}
	}

	summary, err := s.llm.GenerateText(ctx, sb.String())
	if err != nil {
		_ = ClearRateLimit(ctx, s.redisClient, userID, "ai_summary")
		zap.L().Error("summary generation failed", zap.Int("visit_id", visitID), zap.Error(err))
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	summary = strings.TrimSpace(summary)

	if !s.store.UpdateVisitSummary(visitID, summary, userID) {
		return "", apperror.ErrNotFound
	}
	s.store.CreateActivity(userID, model.AISummaryPayload{VisitID: visitID})

	return summary, nil
}

func (s *visitService) AddNote(visitID, userID int, input dto.CreateNoteInput) (*model.Note, error) {
	content := strings.TrimSpace(s.sanitizer.Sanitize(input.Content))
	if content == "" {
		return nil, apperror.New(400, "isi catatan tidak boleh kosong", apperror.ErrInvalidInput)
	}

	return s.store.CreateNote(store.CreateNoteParams{
		VisitID: visitID,
		Content: content,
	}, userID)
}

func (s *visitService) AddPhoto(ctx context.Context, visitID, userID int, file *multipart.FileHeader) (*model.Photo, error) {
	// Check access before paying for the upload.
	if s.store.GetVisitDetails(visitID, userID) == nil {
		return nil, apperror.ErrNotFound
	}
	if s.imageStorage == nil {
		return nil, apperror.New(503, "penyimpanan foto tidak tersedia", apperror.ErrInternal)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	url, err := s.imageStorage.UploadImage(ctx, src, "visits", file.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo, err := s.store.CreatePhoto(store.CreatePhotoParams{
		VisitID: visitID,
		URL:     url,
	}, userID)
	if err != nil {
		// Remove the uploaded object again on store failure.
		if delErr := s.imageStorage.DeleteImage(ctx, url); delErr != nil {
			zap.L().Warn("failed to delete orphaned photo", zap.String("url", url), zap.Error(delErr))
		}
		return nil, err
	}
	return photo, nil
}
