package orm

import (
	"log"
	"os"
	"time"

	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/model"
	"github.com/pescuma/codesize/lib/storages"
)

type gormStorage struct {
	db      *gorm.DB
	console consoles.Console
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.History, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		Logger: l,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error opening history database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// In memory databases exist per connection.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&sqlComparison{})
	if err != nil {
		return nil, errors.Wrap(err, "error creating history tables")
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

// WriteComparison stores one row per library that has a comparable (TOTALS)
// row. Libraries without it are skipped.
func (s *gormStorage) WriteComparison(c *model.Comparison) error {
	var rows []*sqlComparison
	for _, lib := range c.Libraries {
		totals, ok := lib.Totals()
		if !ok || !totals.HasOld {
			continue
		}

		rows = append(rows, newSqlComparison(c, lib, totals))
	}

	if len(rows) == 0 {
		return nil
	}

	s.console.Printf("Recording %v in history...\n", pluralize.NewClient().Pluralize("library", len(rows), true))

	err := s.db.Create(rows).Error
	if err != nil {
		return errors.Wrap(err, "error writing history")
	}

	return nil
}

func (s *gormStorage) ListHistory(library string, limit int) ([]*model.HistoryEntry, error) {
	var rows []*sqlComparison
	err := s.db.Where("library = ?", library).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "error querying history")
	}

	return lo.Map(rows, func(r *sqlComparison, _ int) *model.HistoryEntry { return r.toModel() }), nil
}
