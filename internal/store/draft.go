package store

import (
	"encoding/json"
	"log/slog"

	"balju/internal/models"
)

// draftSlot is the fixed key of the single draft slot. The value is kept
// from earlier releases so existing saved drafts survive upgrades.
const draftSlot = "order_draft_v5"

// DraftStore persists at most one in-progress draft. A new Save
// overwrites the previous one; Load returning nil means "start fresh".
// All persistence failures fail open and are only logged.
type DraftStore struct {
	backing BackingStore
	log     *slog.Logger
}

// NewDraftStore wraps a backing store. A nil logger uses slog's default.
func NewDraftStore(backing BackingStore, log *slog.Logger) *DraftStore {
	if log == nil {
		log = slog.Default()
	}
	return &DraftStore{backing: backing, log: log}
}

// Save overwrites the draft slot. Called when the user abandons the
// order screen, not on every keystroke.
func (s *DraftStore) Save(d *models.Draft) {
	data, err := json.Marshal(d)
	if err != nil {
		s.log.Warn("draft serialize failed", "error", err)
		return
	}
	if err := s.backing.Write(draftSlot, data); err != nil {
		s.log.Warn("draft save failed", "error", err)
	}
}

// Load returns the stored draft, or nil when there is none or the slot
// is unreadable or malformed.
func (s *DraftStore) Load() *models.Draft {
	data, err := s.backing.Read(draftSlot)
	if err != nil {
		s.log.Warn("draft load failed", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var d models.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		s.log.Warn("draft slot malformed, ignoring", "error", err)
		return nil
	}
	return &d
}

// Discard clears the draft slot. Called right after a successful
// submission and when the user declines to restore a saved draft.
func (s *DraftStore) Discard() {
	if err := s.backing.Delete(draftSlot); err != nil {
		s.log.Warn("draft discard failed", "error", err)
	}
}
