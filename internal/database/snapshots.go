package database

import (
	"errors"
	"fmt"

	"mfsim/internal/common"

	"gorm.io/gorm"
)

// SnapshotRepository keeps the most recent preference documents
type SnapshotRepository struct {
	db    *gorm.DB
	limit int
	batch string
}

// NewSnapshotRepository creates a repository keeping at most limit snapshots.
// A limit of zero or less keeps every snapshot.
func NewSnapshotRepository(db *gorm.DB, limit int) *SnapshotRepository {
	return &SnapshotRepository{
		db:    db,
		limit: limit,
		batch: common.GenerateUUID(),
	}
}

// BatchID identifies the snapshots written by this process
func (r *SnapshotRepository) BatchID() string {
	return r.batch
}

// Save stores document as the newest snapshot and prunes old ones
func (r *SnapshotRepository) Save(document []byte) error {
	snapshot := PreferenceSnapshot{
		BatchID:  r.batch,
		Document: document,
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
		return prune(tx, r.limit)
	})
}

// Latest returns the newest document, or nil when there is none
func (r *SnapshotRepository) Latest() ([]byte, error) {
	var snapshot PreferenceSnapshot

	result := r.db.Order("id desc").First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return snapshot.Document, nil
}

// Count returns the number of stored snapshots
func (r *SnapshotRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&PreferenceSnapshot{}).Count(&count).Error
	return count, err
}

// prune deletes all but the newest limit snapshots
func prune(tx *gorm.DB, limit int) error {
	if limit <= 0 {
		return nil
	}

	var keep []uint
	if err := tx.Model(&PreferenceSnapshot{}).Order("id desc").Limit(limit).Pluck("id", &keep).Error; err != nil {
		return fmt.Errorf("failed to select snapshots to keep: %w", err)
	}
	if len(keep) < limit {
		return nil
	}

	if err := tx.Where("id NOT IN ?", keep).Delete(&PreferenceSnapshot{}).Error; err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return nil
}
