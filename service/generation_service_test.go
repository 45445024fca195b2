package service

import (
	"context"
	"errors"
	"testing"

	"wardrobe-reel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderService scripts the render API for pipeline tests
type fakeRenderService struct {
	result        *RenderResult
	generateErr   error
	generateCalls int
	fetchErr      error
	fetchCalls    int
}

func (f *fakeRenderService) GenerateVideo(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.result, nil
}

func (f *fakeRenderService) FetchAsset(ctx context.Context, assetURL string) ([]byte, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return []byte("blob"), nil
}

func (f *fakeRenderService) DownloadURL(videoID string) string {
	return "https://render.example.com/api/video/" + videoID + "/download"
}

func (f *fakeRenderService) ListMusicTracks(ctx context.Context) []models.MusicTrack {
	return []models.MusicTrack{models.DefaultMusicTrack}
}

type fakeStorageService struct {
	assets      *StoredAssets
	err         error
	uploadCalls int
}

func (f *fakeStorageService) UploadVideoAssets(ctx context.Context, userID string, videoID string, video []byte, thumbnail []byte) (*StoredAssets, error) {
	f.uploadCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.assets, nil
}

type fakeEntitlements struct {
	canGenerate  bool
	consumeOK    bool
	consumeCalls int
}

func (f *fakeEntitlements) Entitlement(ctx context.Context, userID string) (*models.Entitlement, error) {
	return &models.Entitlement{}, nil
}

func (f *fakeEntitlements) CanGenerate(ctx context.Context, userID string) (bool, error) {
	return f.canGenerate, nil
}

func (f *fakeEntitlements) Remaining(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (f *fakeEntitlements) Consume(ctx context.Context, userID string, articlesCount int) (bool, error) {
	f.consumeCalls++
	return f.consumeOK, nil
}

type fakeVideoRepo struct {
	inserted []models.VideoRecord
	err      error
}

func (f *fakeVideoRepo) Insert(ctx context.Context, record *models.VideoRecord) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, *record)
	return nil
}

func (f *fakeVideoRepo) ListByUser(ctx context.Context, userID string) ([]models.VideoRecord, error) {
	return f.inserted, nil
}

func (f *fakeVideoRepo) Delete(ctx context.Context, recordID string, userID string) error {
	return nil
}

func testArticles(n int) []models.WardrobeItem {
	items := make([]models.WardrobeItem, n)
	for i := range items {
		items[i] = models.WardrobeItem{ID: string(rune('a' + i)), Title: "Item", Price: "12.00"}
	}
	return items
}

func testInput(articles int) GenerationInput {
	return GenerationInput{
		UserID:   "user-1",
		Username: "closetqueen",
		Articles: testArticles(articles),
		Config:   models.DefaultVideoConfig(),
	}
}

func successResult() *RenderResult {
	return &RenderResult{
		VideoID:      "vid-123",
		VideoURL:     "https://render.example.com/videos/vid-123.mp4",
		ThumbnailURL: "https://render.example.com/thumbs/vid-123.jpg",
		Duration:     14.5,
		FileSize:     2_400_000,
	}
}

// admittedJob mirrors what BeginGeneration hands the pipeline: a fresh
// job already marked busy by its admitting caller.
func admittedJob() *models.GenerationJob {
	job := models.NewGenerationJob()
	job.SetStatus(models.GenerationGenerating)
	return job
}

func newPipeline(render *fakeRenderService, storage StorageServiceInterface, ents *fakeEntitlements, videos *fakeVideoRepo) *GenerationService {
	return NewGenerationService(render, storage, ents, videos)
}

func TestGenerateHappyPath(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	storage := &fakeStorageService{assets: &StoredAssets{
		VideoURL:     "https://drive.google.com/uc?id=video",
		ThumbnailURL: "https://drive.google.com/uc?id=thumb",
	}}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, storage, ents, videos).Generate(context.Background(), job, testInput(3))
	require.NoError(t, err)

	st := job.State()
	assert.Equal(t, models.GenerationCompleted, st.Status)
	assert.Equal(t, "vid-123", st.VideoID)
	assert.Equal(t, "https://drive.google.com/uc?id=video", st.VideoURL)
	assert.Equal(t, "https://drive.google.com/uc?id=thumb", st.ThumbnailURL)
	assert.Equal(t, 14.5, st.Duration)
	assert.Equal(t, int64(2_400_000), st.FileSize)

	require.Len(t, videos.inserted, 1)
	record := videos.inserted[0]
	assert.Equal(t, 3, record.ArticlesCount)
	assert.Equal(t, "vid-123", record.VideoID)
	assert.Equal(t, "user-1", record.UserID)
	assert.NotEmpty(t, record.ID)

	assert.Equal(t, 1, ents.consumeCalls, "entitlement consumed exactly once")
}

func TestGenerateNotEntitled(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	ents := &fakeEntitlements{canGenerate: false}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, nil, ents, videos).Generate(context.Background(), job, testInput(2))

	require.ErrorIs(t, err, ErrNotEntitled)
	assert.Equal(t, 0, render.generateCalls, "no render call without entitlement")
	assert.Equal(t, models.GenerationIdle, job.Status(), "job released for the next submission")
}

func TestGenerateEmptySelection(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	ents := &fakeEntitlements{canGenerate: true}

	job := admittedJob()
	err := newPipeline(render, nil, ents, &fakeVideoRepo{}).Generate(context.Background(), job, testInput(0))

	require.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, 0, render.generateCalls)
	assert.Equal(t, models.GenerationIdle, job.Status())
}

func TestGenerateRenderFailure(t *testing.T) {
	render := &fakeRenderService{generateErr: &UpstreamError{
		Op: "render", Kind: ErrorKindNetwork,
		Message: "could not reach the service, check your connection and try again",
	}}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, nil, ents, videos).Generate(context.Background(), job, testInput(2))

	require.Error(t, err)
	st := job.State()
	assert.Equal(t, models.GenerationFailed, st.Status)
	assert.Equal(t, "could not reach the service, check your connection and try again", st.Error)
	assert.Empty(t, videos.inserted, "no history record on failure")
	assert.Equal(t, 0, ents.consumeCalls, "no consumption on failure")
}

func TestGenerateCompletesWhenUploadFails(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	storage := &fakeStorageService{err: errors.New("drive unavailable")}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, storage, ents, videos).Generate(context.Background(), job, testInput(2))
	require.NoError(t, err)

	// Degraded completion: remote URLs survive, consumption still happens once
	st := job.State()
	assert.Equal(t, models.GenerationCompleted, st.Status)
	assert.Equal(t, "https://render.example.com/videos/vid-123.mp4", st.VideoURL)
	assert.Equal(t, "https://render.example.com/thumbs/vid-123.jpg", st.ThumbnailURL)
	assert.Equal(t, 1, ents.consumeCalls)

	require.Len(t, videos.inserted, 1)
	assert.Equal(t, "https://render.example.com/videos/vid-123.mp4", videos.inserted[0].VideoURL)
}

func TestGenerateCompletesWhenBlobFetchFails(t *testing.T) {
	render := &fakeRenderService{result: successResult(), fetchErr: errors.New("download broken")}
	storage := &fakeStorageService{assets: &StoredAssets{VideoURL: "unused"}}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, storage, ents, videos).Generate(context.Background(), job, testInput(1))
	require.NoError(t, err)

	st := job.State()
	assert.Equal(t, models.GenerationCompleted, st.Status)
	assert.Equal(t, "https://render.example.com/videos/vid-123.mp4", st.VideoURL)
	assert.Equal(t, 0, storage.uploadCalls, "nothing to upload without the blob")
}

func TestGenerateCompletesWithoutStorageConfigured(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, nil, ents, videos).Generate(context.Background(), job, testInput(1))
	require.NoError(t, err)

	st := job.State()
	assert.Equal(t, models.GenerationCompleted, st.Status)
	assert.Equal(t, "https://render.example.com/videos/vid-123.mp4", st.VideoURL)
	assert.Equal(t, 0, render.fetchCalls, "no blob fetch without a storage target")
}

func TestGenerateCompletesWhenHistoryWriteFails(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}
	videos := &fakeVideoRepo{err: errors.New("db down")}

	job := admittedJob()
	err := newPipeline(render, nil, ents, videos).Generate(context.Background(), job, testInput(1))
	require.NoError(t, err)

	assert.Equal(t, models.GenerationCompleted, job.Status())
	assert.Equal(t, 1, ents.consumeCalls)
}

func TestGenerateHonorsVideoWhenConsumeFails(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: false}
	videos := &fakeVideoRepo{}

	job := admittedJob()
	err := newPipeline(render, nil, ents, videos).Generate(context.Background(), job, testInput(1))
	require.NoError(t, err)

	// The render already happened; the result is delivered regardless
	st := job.State()
	assert.Equal(t, models.GenerationCompleted, st.Status)
	assert.NotEmpty(t, st.VideoURL)
}

func TestJobStateReadableWhileGenerating(t *testing.T) {
	render := &fakeRenderService{result: successResult()}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}

	job := admittedJob()
	done := make(chan struct{})
	go func() {
		// A status poll racing the pipeline, as GET /api/generate/status does
		defer close(done)
		for i := 0; i < 1000; i++ {
			st := job.State()
			_ = st.Status
			_ = st.VideoURL
		}
	}()

	err := newPipeline(render, nil, ents, &fakeVideoRepo{}).Generate(context.Background(), job, testInput(2))
	require.NoError(t, err)
	<-done

	assert.Equal(t, models.GenerationCompleted, job.Status())
}

func TestGeneratePassesConfigAndScreenshotThrough(t *testing.T) {
	var captured *RenderRequest
	render := &capturingRenderService{result: successResult(), onGenerate: func(req *RenderRequest) { captured = req }}
	ents := &fakeEntitlements{canGenerate: true, consumeOK: true}

	in := testInput(2)
	in.Config.Template = models.TemplateDynamic
	in.ProfileScreenshotID = "shot-9"

	job := admittedJob()
	err := NewGenerationService(render, nil, ents, &fakeVideoRepo{}).Generate(context.Background(), job, in)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, models.TemplateDynamic, captured.Template)
	assert.Equal(t, "shot-9", captured.ProfileScreenshotID)
	assert.Equal(t, "closetqueen", captured.Username)
	assert.Len(t, captured.Articles, 2)
}

// capturingRenderService records the submitted request
type capturingRenderService struct {
	fakeRenderService
	result     *RenderResult
	onGenerate func(*RenderRequest)
}

func (c *capturingRenderService) GenerateVideo(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	c.onGenerate(req)
	return c.result, nil
}
