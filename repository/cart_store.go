package repository

import (
	"encoding/json"
	"errors"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartStore is the persistence port for the pending-selection record.
// Load never fails: a missing or unparsable record reads as an empty cart,
// so a broken record can never take the rest of the request surface down.
type CartStore interface {
	Load(userID uint) []entity.CartLine
	Save(userID uint, lines []entity.CartLine) error
}

// GormCartStore keeps each user's cart as one JSON document in
// cart_records, the server-side equivalent of the client's single
// local-storage key. Concurrent writers resolve by last-write-wins on the
// whole record.
type GormCartStore struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewGormCartStore(db *gorm.DB, log *logrus.Logger) *GormCartStore {
	return &GormCartStore{DB: db, Log: log}
}

func (s *GormCartStore) Load(userID uint) []entity.CartLine {
	var rec entity.CartRecord
	err := s.DB.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.Log.WithError(err).WithField("userId", userID).Warn("cart record read failed, treating as empty")
		}
		return []entity.CartLine{}
	}

	var lines []entity.CartLine
	if err := json.Unmarshal([]byte(rec.Payload), &lines); err != nil {
		s.Log.WithError(err).WithField("userId", userID).Warn("cart record corrupt, treating as empty")
		return []entity.CartLine{}
	}
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return lines
}

func (s *GormCartStore) Save(userID uint, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	rec := entity.CartRecord{UserID: userID, Payload: string(payload)}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}
