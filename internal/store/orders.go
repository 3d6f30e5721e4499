package store

import (
	"encoding/json"
	"log/slog"
	"time"

	"balju/internal/models"
)

// ordersSlot is the fixed key of the order-log slot.
const ordersSlot = "orders_store_v1"

// DefaultRetention is how long submitted orders are kept before being
// pruned on load.
const DefaultRetention = 365 * 24 * time.Hour

// Repository is the durable append-only log of submitted orders. The
// in-memory sequence is authoritative for the session; the backing store
// is best effort. The only removal is retention pruning on load.
type Repository struct {
	backing    BackingStore
	retention  time.Duration
	now        func() time.Time
	log        *slog.Logger
	records    []models.OrderRecord
	lastPruned int
}

// NewRepository builds a repository over the given backing store.
// retention <= 0 selects DefaultRetention; a nil clock uses time.Now.
func NewRepository(backing BackingStore, retention time.Duration, now func() time.Time, log *slog.Logger) *Repository {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Repository{
		backing:   backing,
		retention: retention,
		now:       now,
		log:       log,
	}
}

// LoadAll reads the backing store, drops records whose creation time is
// older than the retention window, and persists the pruned sequence back
// iff pruning removed anything, so the store never re-grows stale
// entries. An unreadable or malformed slot hydrates as empty.
func (r *Repository) LoadAll() []models.OrderRecord {
	r.records = nil
	r.lastPruned = 0

	data, err := r.backing.Read(ordersSlot)
	if err != nil {
		r.log.Warn("order log unreadable, starting empty", "error", err)
		return r.Records()
	}
	if len(data) == 0 {
		return r.Records()
	}

	var stored []models.OrderRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		r.log.Warn("order log malformed, starting empty", "error", err)
		return r.Records()
	}

	cutoff := r.now().Add(-r.retention)
	kept := make([]models.OrderRecord, 0, len(stored))
	for _, o := range stored {
		if !o.CreationTime().Before(cutoff) {
			kept = append(kept, o)
		}
	}
	r.records = kept

	if pruned := len(stored) - len(kept); pruned > 0 {
		r.lastPruned = pruned
		r.log.Info("pruned expired orders", "count", pruned)
		r.persist()
	}
	return r.Records()
}

// Append adds one record to the end of the log and persists the full
// sequence synchronously. A write failure is swallowed: the in-memory
// state stays authoritative for the session.
func (r *Repository) Append(record models.OrderRecord) {
	r.records = append(r.records, record)
	r.persist()
}

// Records returns a copy of the current in-memory sequence.
func (r *Repository) Records() []models.OrderRecord {
	out := make([]models.OrderRecord, len(r.records))
	copy(out, r.records)
	return out
}

// LastPruned reports how many records the most recent LoadAll removed.
func (r *Repository) LastPruned() int {
	return r.lastPruned
}

func (r *Repository) persist() {
	records := r.records
	if records == nil {
		records = []models.OrderRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		r.log.Warn("order log serialize failed", "error", err)
		return
	}
	if err := r.backing.Write(ordersSlot, data); err != nil {
		r.log.Warn("order log write failed, keeping in-memory state", "error", err)
	}
}
