package service

import (
	"fmt"
	"sync"

	"wardrobe-reel/models"
)

// Session holds the per-session state between a scrape and a generation:
// the immutable snapshot, the ordered selection, the render config and
// the current job. It is discarded or reset when the user starts a new
// scrape or navigates away.
type Session struct {
	ID         string
	Plan       models.Plan
	Snapshot   *models.WardrobeSnapshot
	Screenshot *models.ProfileScreenshot
	Selection  *models.Selection
	Config     models.VideoConfig
	Job        *models.GenerationJob

	// scrapeSeq counts snapshot installs so captures racing an older
	// scrape can be told apart from the current one
	scrapeSeq int64
}

// SessionService is a goroutine-safe in-memory store of sessions.
// All mutation of session state goes through it under one lock, which
// is what keeps the single-job-per-session rule enforceable.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionService creates a new SessionService
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*Session)}
}

func (s *SessionService) getOrCreate(sessionID string, plan models.Plan) *Session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &Session{
			ID:        sessionID,
			Plan:      plan,
			Selection: models.NewSelection(plan.MaxArticles()),
			Config:    models.DefaultVideoConfig(),
			Job:       models.NewGenerationJob(),
		}
		s.sessions[sessionID] = sess
	}
	sess.Plan = plan
	return sess
}

// SetSnapshot installs a fresh wardrobe snapshot, discarding the previous
// selection, screenshot and job. A new scrape always means a clean slate.
// requestedMax lets the client ask for a smaller selection cap than the
// plan allows; it can never raise the cap above the plan limit.
// The returned token identifies this scrape; the caller hands it back
// with SetScreenshot so a capture from a superseded scrape is dropped.
func (s *SessionService) SetSnapshot(sessionID string, plan models.Plan, requestedMax int, snapshot *models.WardrobeSnapshot) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreate(sessionID, plan)
	sess.Snapshot = snapshot
	sess.Screenshot = nil
	sess.Selection = models.NewSelection(plan.EffectiveMaxArticles(requestedMax))
	sess.Config = models.DefaultVideoConfig()
	sess.Job = models.NewGenerationJob()
	sess.scrapeSeq++
	return sess.scrapeSeq
}

// SetScreenshot attaches a profile screenshot captured alongside the scrape
// identified by scrapeToken. The capture races the scrape, so a screenshot
// arriving for a session that has moved on, or been re-scraped with another
// profile, is quietly dropped.
func (s *SessionService) SetScreenshot(sessionID string, scrapeToken int64, shot *models.ProfileScreenshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok && sess.Snapshot != nil && sess.scrapeSeq == scrapeToken {
		sess.Screenshot = shot
	}
}

// errNoSession is returned by mutators when the session has no snapshot yet
func errNoSession(sessionID string) error {
	return fmt.Errorf("session %s has no wardrobe loaded", sessionID)
}

func (s *SessionService) withSession(sessionID string, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.Snapshot == nil {
		return errNoSession(sessionID)
	}
	return fn(sess)
}

// ToggleItem selects or deselects one item from the snapshot
func (s *SessionService) ToggleItem(sessionID string, itemID string) error {
	return s.withSession(sessionID, func(sess *Session) error {
		if _, ok := sess.Snapshot.Item(itemID); !ok {
			return fmt.Errorf("item %s is not in the wardrobe snapshot", itemID)
		}
		sess.Selection.Toggle(itemID)
		return nil
	})
}

// SelectAll fills the selection from the snapshot's natural order
func (s *SessionService) SelectAll(sessionID string) error {
	return s.withSession(sessionID, func(sess *Session) error {
		sess.Selection.SelectAll(sess.Snapshot.ItemIDs())
		return nil
	})
}

// DeselectAll empties the selection
func (s *SessionService) DeselectAll(sessionID string) error {
	return s.withSession(sessionID, func(sess *Session) error {
		sess.Selection.DeselectAll()
		return nil
	})
}

// RemoveItem deselects one item
func (s *SessionService) RemoveItem(sessionID string, itemID string) error {
	return s.withSession(sessionID, func(sess *Session) error {
		sess.Selection.Remove(itemID)
		return nil
	})
}

// Reorder replaces the selection order with an exact permutation
func (s *SessionService) Reorder(sessionID string, itemIDs []string) error {
	return s.withSession(sessionID, func(sess *Session) error {
		return sess.Selection.Reorder(itemIDs)
	})
}

// UpdateConfig replaces the render configuration, clamped to the plan so
// a value outside the plan's allowed set never reaches the render call.
func (s *SessionService) UpdateConfig(sessionID string, config models.VideoConfig) error {
	return s.withSession(sessionID, func(sess *Session) error {
		sess.Config = config.ClampToPlan(sess.Plan)
		return nil
	})
}

// BeginGeneration atomically rejects concurrent submissions and resolves
// the pipeline input from the session. The job it installs is already
// marked generating, so the busy flag is published in the same critical
// section that admits the submission; a second caller sees it before the
// pipeline has run a single step. The caller hands job and input to the
// generation pipeline. The selection order is the article order in the
// video.
func (s *SessionService) BeginGeneration(sessionID string, userID string) (*models.GenerationJob, GenerationInput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.Snapshot == nil {
		return nil, GenerationInput{}, errNoSession(sessionID)
	}
	if sess.Job.Status().Busy() {
		return nil, GenerationInput{}, ErrGenerationInProgress
	}
	if sess.Selection.Size() == 0 {
		return nil, GenerationInput{}, ErrEmptySelection
	}

	articles := make([]models.WardrobeItem, 0, sess.Selection.Size())
	for _, id := range sess.Selection.IDs() {
		if item, ok := sess.Snapshot.Item(id); ok {
			articles = append(articles, item)
		}
	}

	in := GenerationInput{
		UserID:   userID,
		Username: sess.Snapshot.Username,
		Articles: articles,
		Config:   sess.Config.ClampToPlan(sess.Plan),
	}
	if sess.Screenshot != nil {
		in.ProfileScreenshotID = sess.Screenshot.ID
	}

	job := models.NewGenerationJob()
	job.SetStatus(models.GenerationGenerating)
	sess.Job = job
	return job, in, nil
}

// Get returns the session, or nil if none exists
func (s *SessionService) Get(sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID]
}

// Reset puts the session's job back to idle and clears the selection,
// mirroring a navigation away from the result view. An in-flight remote
// request is not cancelled; its late response just has nowhere to land.
func (s *SessionService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		sess.Selection = models.NewSelection(sess.Plan.MaxArticles())
		sess.Job = models.NewGenerationJob()
	}
}
