package repository

import (
	"io"
	"testing"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartStore(t *testing.T) (*GormCartStore, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.CartRecord{}))

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewGormCartStore(db, log), db
}

func TestLoadMissingRecordIsEmpty(t *testing.T) {
	store, _ := setupCartStore(t)

	got := store.Load(1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store, _ := setupCartStore(t)

	lines := []entity.CartLine{
		{MealID: 7, ProviderID: 2, Name: "Beef Khichuri", Price: 180, Qty: 2},
		{MealID: 9, Name: "Fuchka", Price: 60, Qty: 1},
	}
	require.NoError(t, store.Save(1, lines))

	got := store.Load(1)
	assert.Equal(t, lines, got)
}

func TestLoadCorruptPayloadIsEmptyAndDoesNotError(t *testing.T) {
	store, db := setupCartStore(t)

	rec := entity.CartRecord{UserID: 1, Payload: `{"definitely": "not a cart`}
	require.NoError(t, db.Create(&rec).Error)

	got := store.Load(1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	store, db := setupCartStore(t)

	require.NoError(t, store.Save(1, []entity.CartLine{{MealID: 7, Qty: 1}}))
	require.NoError(t, store.Save(1, []entity.CartLine{{MealID: 9, Qty: 3}}))

	// last write wins, and there is still exactly one record per user
	var count int64
	require.NoError(t, db.Model(&entity.CartRecord{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got := store.Load(1)
	require.Len(t, got, 1)
	assert.Equal(t, uint(9), got[0].MealID)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	store, _ := setupCartStore(t)

	require.NoError(t, store.Save(1, []entity.CartLine{{MealID: 7, Qty: 1}}))
	require.NoError(t, store.Save(2, []entity.CartLine{{MealID: 8, Qty: 2}}))

	assert.Equal(t, uint(7), store.Load(1)[0].MealID)
	assert.Equal(t, uint(8), store.Load(2)[0].MealID)
}
