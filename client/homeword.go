package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wuwarren/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ErrEmptyFields is returned by Save when title or description is empty
var ErrEmptyFields = errors.New("title and description are required")

// HomeWordEditor edits the single title/description record shown on the
// home page. An empty ID means the record has never been stored: Save then
// generates an ID locally and creates it; otherwise only the title and
// description are sent. Either branch re-fetches the canonical record.
type HomeWordEditor struct {
	api      HomeWordAPI
	notifier *Notifier
	session  Session
	logger   *zap.Logger

	word models.Word
}

// NewHomeWordEditor creates a home-word editor for the given session
func NewHomeWordEditor(api HomeWordAPI, notifier *Notifier, session Session, logger *zap.Logger) *HomeWordEditor {
	return &HomeWordEditor{
		api:      api,
		notifier: notifier,
		session:  session,
		logger:   logger,
	}
}

// Load fetches the stored record and adopts it as current state. A page
// with no stored word keeps the empty record (placeholder content).
func (e *HomeWordEditor) Load(ctx context.Context) error {
	words, err := e.api.ListWords(ctx)
	if err != nil {
		e.logger.Error("failed to load home word", zap.Error(err))
		e.notifier.Notify("failed to load content", NotificationError)
		return err
	}

	if len(words) > 0 {
		e.word = words[0]
	}
	return nil
}

// SetTitle updates the in-memory title
func (e *HomeWordEditor) SetTitle(title string) {
	e.word.Title = title
}

// SetDescription updates the in-memory description
func (e *HomeWordEditor) SetDescription(description string) {
	e.word.Description = description
}

// Word returns the current in-memory record
func (e *HomeWordEditor) Word() models.Word {
	return e.word
}

// Save validates and persists the record: create with a fresh UUID when the
// ID is empty, update title/description only otherwise. The canonical record
// is re-fetched afterwards to reconcile with server state.
func (e *HomeWordEditor) Save(ctx context.Context) error {
	if !e.session.IsAdmin() {
		e.notifier.Notify("admin session required", NotificationError)
		return ErrNotAdmin
	}

	if e.word.Title == "" || e.word.Description == "" {
		e.notifier.Notify("title and description are required", NotificationError)
		return ErrEmptyFields
	}

	if e.word.ID == "" {
		e.word.ID = uuid.NewString()
		if err := e.api.CreateWord(ctx, &e.word); err != nil {
			// Roll the ID back so a retry goes through create again
			e.word.ID = ""
			e.logger.Error("failed to create home word", zap.Error(err))
			e.notifier.Notify("failed to save content", NotificationError)
			return err
		}
	} else {
		req := &models.UpdateWordRequest{
			Title:       e.word.Title,
			Description: e.word.Description,
		}
		if err := e.api.UpdateWord(ctx, e.word.ID, req); err != nil {
			e.logger.Error("failed to update home word", zap.Error(err))
			e.notifier.Notify("failed to save content", NotificationError)
			return err
		}
	}

	if err := e.Load(ctx); err != nil {
		return err
	}

	e.notifier.Notify("content saved", NotificationSuccess)
	return nil
}
