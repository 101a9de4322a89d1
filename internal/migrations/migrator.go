// Package migrations holds versioned schema revisions applied on top of the
// tables created by db.EnsureSchema.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"blog_api/internal/logger"

	"gorm.io/gorm"
)

// Revision is one schema step. DownRevision names its parent ("" for the first).
type Revision struct {
	ID           string
	DownRevision string
	Message      string
	Upgrade      func(tx *gorm.DB) error
	Downgrade    func(tx *gorm.DB) error
}

// schemaVersion stores the head revision currently applied.
type schemaVersion struct {
	VersionNum string `gorm:"primaryKey;size:32"`
}

func (schemaVersion) TableName() string { return "schema_version" }

var ErrUnknownRevision = errors.New("unknown revision")

// Migrator applies revisions in order, tracking the current one in schema_version.
type Migrator struct {
	db        *gorm.DB
	log       *logger.Logger
	revisions []Revision
}

// New returns a migrator over the built-in revision chain.
func New(db *gorm.DB, log *logger.Logger) *Migrator {
	return NewWithRevisions(db, log, All())
}

func NewWithRevisions(db *gorm.DB, log *logger.Logger, revs []Revision) *Migrator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Migrator{db: db, log: log, revisions: revs}
}

// Current returns the applied revision id, or "" when nothing is applied.
func (m *Migrator) Current(ctx context.Context) (string, error) {
	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&schemaVersion{}); err != nil {
		return "", fmt.Errorf("ensure schema_version table: %w", err)
	}
	var rows []schemaVersion
	if err := db.Find(&rows).Error; err != nil {
		return "", fmt.Errorf("read schema_version: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].VersionNum, nil
}

func (m *Migrator) indexOf(id string) (int, error) {
	if id == "" {
		return -1, nil
	}
	for i, r := range m.revisions {
		if r.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownRevision, id)
}

// Upgrade applies every revision after the current one. Each revision and its
// version bump share a transaction.
func (m *Migrator) Upgrade(ctx context.Context) (int, error) {
	cur, err := m.Current(ctx)
	if err != nil {
		return 0, err
	}
	idx, err := m.indexOf(cur)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, rev := range m.revisions[idx+1:] {
		rev := rev
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := rev.Upgrade(tx); err != nil {
				return err
			}
			return setVersion(tx, rev.ID)
		})
		if err != nil {
			return applied, fmt.Errorf("upgrade to %s: %w", rev.ID, err)
		}
		m.log.Infow("migration_applied", "revision", rev.ID, "message", rev.Message)
		applied++
	}
	return applied, nil
}

// Downgrade reverts up to steps revisions, newest first.
func (m *Migrator) Downgrade(ctx context.Context, steps int) (int, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("steps must be positive, got %d", steps)
	}
	cur, err := m.Current(ctx)
	if err != nil {
		return 0, err
	}
	idx, err := m.indexOf(cur)
	if err != nil {
		return 0, err
	}

	reverted := 0
	for ; idx >= 0 && reverted < steps; idx-- {
		rev := m.revisions[idx]
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := rev.Downgrade(tx); err != nil {
				return err
			}
			return setVersion(tx, rev.DownRevision)
		})
		if err != nil {
			return reverted, fmt.Errorf("downgrade %s: %w", rev.ID, err)
		}
		m.log.Infow("migration_reverted", "revision", rev.ID, "now", rev.DownRevision)
		reverted++
	}
	return reverted, nil
}

func setVersion(tx *gorm.DB, id string) error {
	if err := tx.Where("1 = 1").Delete(&schemaVersion{}).Error; err != nil {
		return fmt.Errorf("clear schema_version: %w", err)
	}
	if id == "" {
		return nil
	}
	if err := tx.Create(&schemaVersion{VersionNum: id}).Error; err != nil {
		return fmt.Errorf("write schema_version %s: %w", id, err)
	}
	return nil
}
