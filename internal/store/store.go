// Package store persists the VIP registry in a local SQLite file.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vipbot/internal/model"
)

var (
	ErrNotFound      = errors.New("member not found")
	ErrAlreadyExists = errors.New("member already exists")
)

// Store executes single-statement reads and writes against the vip_users table.
// Writes are serialized; every call commits on its own.
type Store struct {
	db      *gorm.DB
	writeMu sync.Mutex
}

// Open connects to the SQLite file at path and creates the table if absent.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// One connection: keeps ":memory:" databases alive and avoids "database is locked".
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&model.Member{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate vip_users: %w", err)
	}

	slog.Info("Registry store ready", "path", path)
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Member{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check member %d: %w", id, err)
	}
	return n > 0, nil
}

// Insert creates a member with both discounts enabled.
// Callers check Exists first; a concurrent duplicate still surfaces as ErrAlreadyExists.
func (s *Store) Insert(ctx context.Context, id int64, tier model.Tier, joinedAt, modifiedAt time.Time) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	m := model.Member{
		ID:                 id,
		Tier:               tier,
		MechanicalDiscount: true,
		AestheticDiscount:  true,
		JoinedAt:           joinedAt,
		ModifiedAt:         modifiedAt,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert member %d: %w", id, err)
	}
	return nil
}

func (s *Store) UpdateTier(ctx context.Context, id int64, tier model.Tier, modifiedAt time.Time) error {
	return s.update(ctx, id, map[string]any{
		"tipo_vip":           string(tier),
		"fecha_modificacion": modifiedAt,
	})
}

// UpdateFlag sets one discount flag. The column comes from the Flag enum, never from input.
func (s *Store) UpdateFlag(ctx context.Context, id int64, flag model.Flag, value bool, modifiedAt time.Time) error {
	col := flag.Column()
	if col == "" {
		return fmt.Errorf("unknown discount flag %d", flag)
	}
	return s.update(ctx, id, map[string]any{
		col:                  value,
		"fecha_modificacion": modifiedAt,
	})
}

func (s *Store) update(ctx context.Context, id int64, values map[string]any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res := s.db.WithContext(ctx).Model(&model.Member{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update member %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Member{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete member %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id int64) (model.Member, error) {
	var m model.Member
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Member{}, ErrNotFound
	}
	if err != nil {
		return model.Member{}, fmt.Errorf("failed to get member %d: %w", id, err)
	}
	return m, nil
}

// ListAll returns every member ordered by id.
func (s *Store) ListAll(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []model.Member{}
	}
	return members, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Member{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return n, nil
}

// ResetAllFlags turns both discounts back on for every member.
// fecha_modificacion is left untouched, unlike every other write.
func (s *Store) ResetAllFlags(ctx context.Context) (int64, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.Member{}).
		Updates(map[string]any{
			model.Mechanical.Column(): true,
			model.Aesthetic.Column():  true,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to reset discount flags: %w", res.Error)
	}
	return res.RowsAffected, nil
}
