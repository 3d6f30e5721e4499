package store

import (
	"github.com/jinzhu/gorm"
)

// Slot is one named persistence slot in the SQLite backing store.
type Slot struct {
	Key   string `gorm:"primary_key"`
	Value []byte
}

// SlotStore is the SQLite-backed BackingStore. One row per slot.
type SlotStore struct {
	db *gorm.DB
}

// NewSlotStore migrates the slot schema and wraps the database handle.
func NewSlotStore(db *gorm.DB) (*SlotStore, error) {
	if err := db.AutoMigrate(&Slot{}).Error; err != nil {
		return nil, err
	}
	return &SlotStore{db: db}, nil
}

func (s *SlotStore) Read(slot string) ([]byte, error) {
	var row Slot
	err := s.db.Where("key = ?", slot).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

func (s *SlotStore) Write(slot string, data []byte) error {
	return s.db.
		Where(Slot{Key: slot}).
		Assign(map[string]interface{}{"value": data}).
		FirstOrCreate(&Slot{}).Error
}

func (s *SlotStore) Delete(slot string) error {
	return s.db.Where("key = ?", slot).Delete(&Slot{}).Error
}
