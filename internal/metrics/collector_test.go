package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestBusinessMetricsCollector_Collect(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE dive_sites (id TEXT PRIMARY KEY)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE reviews (id TEXT PRIMARY KEY)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO dive_sites (id) VALUES ('a'), ('b')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO reviews (id) VALUES ('r1'), ('r2'), ('r3')`).Error)

	m := getTestMetrics()
	c := NewBusinessMetricsCollector(db, m, zap.NewNop())
	defer c.ticker.Stop()

	c.collect()

	assert.Equal(t, 2.0, getGaugeValue(t, m.SitesTotal))
	assert.Equal(t, 3.0, getGaugeValue(t, m.ReviewsTotal))
}

func TestBusinessMetricsCollector_MissingTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	m := getTestMetrics()
	m.SetSitesTotal(9)
	c := NewBusinessMetricsCollector(db, m, zap.NewNop())
	defer c.ticker.Stop()

	assert.NotPanics(t, c.collect)
	assert.Equal(t, 9.0, getGaugeValue(t, m.SitesTotal), "gauge keeps its last value when counting fails")
}
