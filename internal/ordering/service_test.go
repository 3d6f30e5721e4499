package ordering

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balju/internal/focus"
	"balju/internal/models"
	"balju/internal/monitoring"
	"balju/internal/store"
	"balju/internal/validation"
)

type fixture struct {
	svc     *Service
	backing *store.MemoryStore
	monitor *monitoring.Monitor
	focus   *focus.Controller
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backing := store.NewMemoryStore()
	monitor := monitoring.NewMonitor()
	controller := focus.NewController()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	clock := func() time.Time { return now }

	svc := NewService(
		models.NewCatalog(),
		store.NewRepository(backing, 0, clock, nil),
		store.NewDraftStore(backing, nil),
		controller,
		monitor,
		clock,
		nil,
	)
	return &fixture{svc: svc, backing: backing, monitor: monitor, focus: controller, now: now}
}

func validDraft() *models.Draft {
	d := models.NewDraft("2025-06-01")
	d.Branch = "3번 지점"
	id := d.AddItem(models.CategoryVegetable).ID
	d.SetProduct(id, "무", "박스")
	d.SetQuantity(id, "3")
	return d
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t)
	f.svc.SaveDraft(validDraft())

	rec, err := f.svc.Submit(validDraft())
	require.NoError(t, err)
	assert.Equal(t, "3번 지점", rec.Branch)
	assert.Equal(t, f.now.UnixMilli(), rec.CreatedAt)

	// The record is in the log and persisted.
	require.Len(t, f.svc.Records(), 1)
	data, err := f.backing.Read("orders_store_v1")
	require.NoError(t, err)
	var stored []models.OrderRecord
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, rec.ID, stored[0].ID)

	// Submission clears the draft slot and the focus markers.
	assert.Nil(t, f.svc.LoadDraft())
	assert.Empty(t, f.focus.ProductError())
	assert.Empty(t, f.focus.QuantityError())

	total, ok := f.monitor.GetMetric("orders_submitted_total")
	require.True(t, ok)
	assert.Equal(t, 1, total)
}

func TestSubmitValidationFailureMarksFocus(t *testing.T) {
	f := newFixture(t)
	d := validDraft()
	bad := d.AddItem(models.CategoryVegetable)
	d.SetQuantity(bad.ID, "3")

	_, err := f.svc.Submit(d)
	require.Error(t, err)
	var failure *validation.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, validation.MissingProduct, failure.Code)
	assert.Equal(t, bad.ID, f.focus.ProductError())

	// Nothing was persisted and the metric stayed at zero.
	assert.Empty(t, f.svc.Records())
	_, ok := f.monitor.GetMetric("orders_submitted_total")
	assert.False(t, ok)
}

func TestCheckQuantityFailureAndRecovery(t *testing.T) {
	f := newFixture(t)
	d := validDraft()
	id := d.Items[0].ID
	d.SetQuantity(id, "3개")

	err := f.svc.Check(d)
	require.Error(t, err)
	assert.Equal(t, id, f.focus.QuantityError())

	d.SetQuantity(id, "3")
	require.NoError(t, f.svc.Check(d))
	assert.Empty(t, f.focus.QuantityError())
}

func TestDraftLifecycle(t *testing.T) {
	f := newFixture(t)
	assert.Nil(t, f.svc.LoadDraft())

	f.svc.SaveDraft(validDraft())
	loaded := f.svc.LoadDraft()
	require.NotNil(t, loaded)
	assert.Equal(t, "3번 지점", loaded.Branch)

	recovered, ok := f.monitor.GetMetric("drafts_recovered_total")
	require.True(t, ok)
	assert.Equal(t, 1, recovered)

	f.svc.DiscardDraft()
	assert.Nil(t, f.svc.LoadDraft())
}

func TestHydratePrunesAndCounts(t *testing.T) {
	f := newFixture(t)

	stale := models.OrderRecord{
		ID:        1,
		Branch:    "1번 지점",
		Date:      f.now.AddDate(0, 0, -400).Format("2006-01-02"),
		CreatedAt: f.now.AddDate(0, 0, -400).UnixMilli(),
	}
	fresh := models.OrderRecord{
		ID:        2,
		Branch:    "2번 지점",
		Date:      f.now.AddDate(0, 0, -30).Format("2006-01-02"),
		CreatedAt: f.now.AddDate(0, 0, -30).UnixMilli(),
	}
	data, err := json.Marshal([]models.OrderRecord{stale, fresh})
	require.NoError(t, err)
	require.NoError(t, f.backing.Write("orders_store_v1", data))

	records := f.svc.Hydrate()
	require.Len(t, records, 1)
	assert.Equal(t, "2번 지점", records[0].Branch)

	pruned, ok := f.monitor.GetMetric("orders_pruned_total")
	require.True(t, ok)
	assert.Equal(t, 1, pruned)
	loadedMetric, ok := f.monitor.GetMetric("orders_loaded")
	require.True(t, ok)
	assert.Equal(t, 1, loadedMetric)
}

func TestHistoryView(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Submit(validDraft())
	require.NoError(t, err)

	other := validDraft()
	other.Branch = "10번 지점"
	_, err = f.svc.Submit(other)
	require.NoError(t, err)

	groups := f.svc.History("", "", "", true)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Orders, 2)
	assert.Equal(t, "3번 지점", groups[0].Orders[0].Branch)
	assert.Equal(t, "10번 지점", groups[0].Orders[1].Branch)

	filtered := f.svc.History("10번 지점", "", "", true)
	require.Len(t, filtered, 1)
	require.Len(t, filtered[0].Orders, 1)
	assert.NotEqual(t, first.Branch, filtered[0].Orders[0].Branch)
}
