package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"wardrobe-reel/models"
	"wardrobe-reel/repository"

	"github.com/google/uuid"
)

// GenerationService drives one render attempt through its states:
//
//	idle → generating → uploading_assets → persisting → completed
//	idle → generating → failed
//
// The render call is the only step allowed to fail the job. Durable
// upload and history persistence are best-effort: losing secondary
// storage must not lose the user's video, so the job still completes
// with the render service's own URLs when they fail.
// Implements GenerationServiceInterface
type GenerationService struct {
	render       RenderServiceInterface
	storage      StorageServiceInterface // nil when durable storage is not configured
	entitlements EntitlementServiceInterface
	videos       repository.VideoRepositoryInterface
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(
	render RenderServiceInterface,
	storage StorageServiceInterface,
	entitlements EntitlementServiceInterface,
	videos repository.VideoRepositoryInterface,
) *GenerationService {
	return &GenerationService{
		render:       render,
		storage:      storage,
		entitlements: entitlements,
		videos:       videos,
	}
}

// Ensure GenerationService implements GenerationServiceInterface
var _ GenerationServiceInterface = (*GenerationService)(nil)

// Generate runs the pipeline on a job the caller has already admitted
// and marked busy (SessionService.BeginGeneration). Preconditions
// (non-empty selection, entitlement) are re-checked here before any
// remote call; a failed precondition returns the job to idle so the
// session can submit again. On render failure the job lands in failed
// with a user-facing message and the error is returned. Entitlement is
// consumed exactly once, only after the job reaches completed.
func (s *GenerationService) Generate(ctx context.Context, job *models.GenerationJob, in GenerationInput) error {
	if len(in.Articles) == 0 {
		job.SetStatus(models.GenerationIdle)
		return ErrEmptySelection
	}

	canGenerate, err := s.entitlements.CanGenerate(ctx, in.UserID)
	if err != nil {
		job.SetStatus(models.GenerationIdle)
		return fmt.Errorf("failed to check entitlement: %w", err)
	}
	if !canGenerate {
		job.SetStatus(models.GenerationIdle)
		return ErrNotEntitled
	}

	job.Update(func(st *models.JobState) {
		st.Status = models.GenerationGenerating
		st.Articles = in.Articles
		st.Config = in.Config
		st.StartedAt = time.Now()
		st.Error = ""
	})

	result, err := s.render.GenerateVideo(ctx, s.buildRenderRequest(in))
	if err != nil {
		message := "video generation failed, please try again later"
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			message = upstream.Message
		}
		job.Update(func(st *models.JobState) {
			st.Status = models.GenerationFailed
			st.Error = message
		})
		return err
	}

	job.Update(func(st *models.JobState) {
		st.Status = models.GenerationUploadingAssets
		st.VideoID = result.VideoID
		st.VideoURL = result.VideoURL
		st.ThumbnailURL = result.ThumbnailURL
		st.Duration = result.Duration
		st.FileSize = result.FileSize
	})
	s.uploadAssets(ctx, job, in, result)

	job.SetStatus(models.GenerationPersisting)
	s.persistRecord(ctx, job.State(), in)

	if consumed, err := s.entitlements.Consume(ctx, in.UserID, len(in.Articles)); err != nil || !consumed {
		// The render already happened; the video is honored either way
		log.Printf("⚠️  Entitlement consumption failed for user %s (consumed=%v, err=%v)", in.UserID, consumed, err)
	}

	job.SetStatus(models.GenerationCompleted)
	return nil
}

func (s *GenerationService) buildRenderRequest(in GenerationInput) *RenderRequest {
	articles := make([]RenderArticle, 0, len(in.Articles))
	for _, item := range in.Articles {
		articles = append(articles, RenderArticle{
			ID:       item.ID,
			Title:    item.Title,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Brand:    item.Brand,
		})
	}

	return &RenderRequest{
		Articles:            articles,
		Duration:            in.Config.Duration,
		MusicTrack:          in.Config.MusicTrack,
		Title:               videoTitle(in.Username),
		Template:            in.Config.Template,
		CustomText:          in.Config.CustomText,
		HasWatermark:        in.Config.HasWatermark,
		Resolution:          in.Config.Resolution,
		AspectRatio:         in.Config.AspectRatio,
		Username:            in.Username,
		ProfileScreenshotID: in.ProfileScreenshotID,
	}
}

// uploadAssets fetches the finished media and copies it to durable
// storage. Every failure here degrades to the render service's own
// URLs, which are already on the job.
func (s *GenerationService) uploadAssets(ctx context.Context, job *models.GenerationJob, in GenerationInput, result *RenderResult) {
	if s.storage == nil {
		log.Printf("⚠️  Durable storage not configured, keeping remote URLs for video %s", result.VideoID)
		return
	}

	videoData, err := s.render.FetchAsset(ctx, s.render.DownloadURL(result.VideoID))
	if err != nil {
		log.Printf("⚠️  Video blob fetch failed, keeping remote URLs: %v", err)
		return
	}

	var thumbData []byte
	if result.ThumbnailURL != "" {
		thumbData, err = s.render.FetchAsset(ctx, result.ThumbnailURL)
		if err != nil {
			log.Printf("⚠️  Thumbnail fetch failed, continuing without it: %v", err)
			thumbData = nil
		} else if optimized, err := OptimizeThumbnail(thumbData); err == nil {
			thumbData = optimized
		}
	}

	assets, err := s.storage.UploadVideoAssets(ctx, in.UserID, result.VideoID, videoData, thumbData)
	if err != nil {
		log.Printf("⚠️  Durable upload failed, keeping remote URLs: %v", err)
		return
	}

	job.Update(func(st *models.JobState) {
		st.VideoURL = assets.VideoURL
		if assets.ThumbnailURL != "" {
			st.ThumbnailURL = assets.ThumbnailURL
		}
	})
}

// persistRecord writes the history entry with whichever URLs survived.
// A failed write is logged and swallowed: the user already holds a
// playable video URL and that result is not taken back.
func (s *GenerationService) persistRecord(ctx context.Context, st models.JobState, in GenerationInput) {
	record := &models.VideoRecord{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		VideoID:       st.VideoID,
		VideoURL:      st.VideoURL,
		ThumbnailURL:  st.ThumbnailURL,
		Title:         videoTitle(in.Username),
		Duration:      st.Duration,
		FileSize:      st.FileSize,
		Template:      in.Config.Template,
		ArticlesCount: len(in.Articles),
		CreatedAt:     time.Now(),
	}

	if err := s.videos.Insert(ctx, record); err != nil {
		log.Printf("⚠️  History write failed for video %s: %v", st.VideoID, err)
	}
}

func videoTitle(username string) string {
	if username == "" {
		return "Wardrobe video"
	}
	return fmt.Sprintf("@%s wardrobe", username)
}
