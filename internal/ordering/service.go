// Package ordering wires the order engine together: validation gates
// submission, successful submissions land in the order log and clear the
// draft slot, and the history view is recomputed on demand.
package ordering

import (
	"log/slog"
	"time"

	"balju/internal/focus"
	"balju/internal/models"
	"balju/internal/monitoring"
	"balju/internal/query"
	"balju/internal/store"
	"balju/internal/validation"
)

// Service is the single entry point the presentation layer talks to.
type Service struct {
	catalog *models.Catalog
	repo    *store.Repository
	drafts  *store.DraftStore
	focus   *focus.Controller
	monitor *monitoring.Monitor
	now     func() time.Time
	log     *slog.Logger
}

// NewService assembles the engine. A nil clock uses time.Now; a nil
// logger uses slog's default.
func NewService(
	catalog *models.Catalog,
	repo *store.Repository,
	drafts *store.DraftStore,
	controller *focus.Controller,
	monitor *monitoring.Monitor,
	now func() time.Time,
	log *slog.Logger,
) *Service {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog: catalog,
		repo:    repo,
		drafts:  drafts,
		focus:   controller,
		monitor: monitor,
		now:     now,
		log:     log,
	}
}

// Catalog exposes the product/branch catalog to the presentation layer.
func (s *Service) Catalog() *models.Catalog {
	return s.catalog
}

// Focus exposes the error-focus controller.
func (s *Service) Focus() *focus.Controller {
	return s.focus
}

// Hydrate loads the order history once at session start, applying
// retention pruning.
func (s *Service) Hydrate() []models.OrderRecord {
	records := s.repo.LoadAll()
	if pruned := s.repo.LastPruned(); pruned > 0 {
		s.monitor.RecordPruned(pruned)
	}
	s.monitor.RecordMetric("orders_loaded", len(records))
	s.log.Info("history hydrated", "orders", len(records), "pruned", s.repo.LastPruned())
	return records
}

// Check runs submission validation and steers the focus controller: a
// row-scoped failure marks the offending row, success clears all
// markers. It never persists anything. Returns nil when the draft is
// submittable.
func (s *Service) Check(d *models.Draft) error {
	f := validation.Validate(d)
	if f == nil {
		s.focus.Clear()
		return nil
	}
	switch f.Code {
	case validation.MissingProduct:
		s.focus.MarkInvalidProduct(f.RowID)
	case validation.MissingQuantity, validation.NonNumericQuantity:
		s.focus.MarkInvalidQuantity(f.RowID)
	}
	return f
}

// Submit validates the draft and, if it passes, freezes it into a
// record, appends it to the log and clears the draft slot. On a
// validation failure the offending row is marked on the focus
// controller and the failure is returned; nothing is persisted.
func (s *Service) Submit(d *models.Draft) (models.OrderRecord, error) {
	if err := s.Check(d); err != nil {
		return models.OrderRecord{}, err
	}

	record := models.NewOrderRecord(d, s.now())
	s.repo.Append(record)
	s.drafts.Discard()
	s.monitor.RecordSubmission(record.Branch)
	s.log.Info("order submitted",
		"branch", record.Branch,
		"date", record.Date,
		"items", len(record.Items))
	return record, nil
}

// SaveDraft persists the draft. Called when the user leaves the order
// screen without submitting.
func (s *Service) SaveDraft(d *models.Draft) {
	s.drafts.Save(d)
}

// LoadDraft returns the saved draft, or nil when there is none.
func (s *Service) LoadDraft() *models.Draft {
	d := s.drafts.Load()
	if d != nil {
		s.monitor.RecordDraftRecovered()
	}
	return d
}

// DiscardDraft drops the saved draft.
func (s *Service) DiscardDraft() {
	s.drafts.Discard()
}

// Records returns the current order log.
func (s *Service) Records() []models.OrderRecord {
	return s.repo.Records()
}

// History recomputes the filtered, grouped and sorted history view.
func (s *Service) History(branchFilter, dateFrom, dateTo string, sortDescending bool) []query.DateGroup {
	return query.View(s.repo.Records(), branchFilter, dateFrom, dateTo, sortDescending)
}
