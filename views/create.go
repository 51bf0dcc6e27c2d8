package views

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"social-bridge/helpers"
	"social-bridge/models"
	"social-bridge/services"

	"github.com/google/uuid"
)

// DefaultConcept is the image concept used when no custom direction is set.
const DefaultConcept = "The project in a high-tech setting"

type CreateSnapshot struct {
	Project    models.Project `json:"project"`
	Direction  string         `json:"direction"`
	Trend      string         `json:"trend"`
	Busy       bool           `json:"busy"`
	Draft      models.Draft   `json:"draft"`
	CanCopy    bool           `json:"can_copy"`
	CanPublish bool           `json:"can_publish"`
	ShareURL   string         `json:"share_url"`
}

// CreateScreen drafts content for the selected project. At most one
// generation runs at a time; a second one gets ErrBusy.
type CreateScreen struct {
	content ContentGenerator
	logger  *slog.Logger
	busy    atomic.Bool

	mu        sync.Mutex
	project   models.ProjectType
	direction string
	trend     string
	draft     models.Draft
}

func NewCreateScreen(content ContentGenerator, logger *slog.Logger) *CreateScreen {
	return &CreateScreen{
		content: content,
		logger:  helpers.LoggerOrDiscard(logger),
		project: models.ProjectCodex,
	}
}

func (s *CreateScreen) SelectProject(t models.ProjectType) error {
	if _, ok := models.GetProject(t); !ok {
		return ErrUnknownProject
	}
	s.mu.Lock()
	s.project = t
	s.mu.Unlock()
	return nil
}

func (s *CreateScreen) SetDirection(direction string) {
	s.mu.Lock()
	s.direction = direction
	s.mu.Unlock()
}

// UseTrend sets the trend blended into the next text draft; "" clears it.
func (s *CreateScreen) UseTrend(name string) {
	s.mu.Lock()
	s.trend = strings.TrimSpace(name)
	s.mu.Unlock()
}

// DraftText replaces the current text with a fresh draft.
func (s *CreateScreen) DraftText(ctx context.Context) (CreateSnapshot, error) {
	err := s.exclusive(func() {
		s.mu.Lock()
		project, _ := models.GetProject(s.project)
		trend := s.trend
		s.draft.Text = ""
		s.mu.Unlock()

		text := s.content.GenerateText(ctx, project, trend)

		s.mu.Lock()
		s.assignDraftID(project.Type)
		s.draft.Text = text
		s.mu.Unlock()

		s.logger.Info("Drafted post", "project", project.Name, "trend", trend)
	})
	return s.Snapshot(), err
}

// DraftImage replaces the current image using the custom direction, or
// DefaultConcept when it is blank.
func (s *CreateScreen) DraftImage(ctx context.Context) (CreateSnapshot, error) {
	err := s.exclusive(func() {
		s.mu.Lock()
		project, _ := models.GetProject(s.project)
		concept := strings.TrimSpace(s.direction)
		s.draft.Image = nil
		s.mu.Unlock()

		if concept == "" {
			concept = DefaultConcept
		}
		image := s.content.GenerateImage(ctx, project, concept)

		s.mu.Lock()
		s.assignDraftID(project.Type)
		s.draft.Image = image
		s.mu.Unlock()

		s.logger.Info("Drafted image", "project", project.Name, "concept", concept, "ok", image != nil)
	})
	return s.Snapshot(), err
}

// exclusive runs fn unless another generation holds the screen. The guard
// is released when fn returns, before the caller takes its snapshot.
func (s *CreateScreen) exclusive(fn func()) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)
	fn()
	return nil
}

// assignDraftID keeps one id for the text and image of a draft until it is
// dismissed or the project changes. Callers hold s.mu.
func (s *CreateScreen) assignDraftID(project models.ProjectType) {
	if s.draft.ID == "" || s.draft.Project != project {
		s.draft.ID = uuid.NewString()
		s.draft.Project = project
	}
}

// Dismiss discards the draft. A non-empty id must match the current draft,
// so a stale dismissal does not drop newer content.
func (s *CreateScreen) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" && id != s.draft.ID {
		return false
	}
	s.draft = models.Draft{}
	return true
}

func (s *CreateScreen) Snapshot() CreateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, _ := models.GetProject(s.project)
	snap := CreateSnapshot{
		Project:   project,
		Direction: s.direction,
		Trend:     s.trend,
		Busy:      s.busy.Load(),
		Draft:     s.draft,
	}
	if s.draft.Image != nil {
		image := *s.draft.Image
		snap.Draft.Image = &image
	}
	if strings.TrimSpace(s.draft.Text) != "" {
		snap.CanCopy = true
		snap.CanPublish = true
		snap.ShareURL = services.ShareIntentURL(s.draft.Text)
	}
	return snap
}
