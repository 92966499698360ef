package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// sqlRecorder captures every statement gorm builds so its shape can be
// asserted without a database.
type sqlRecorder struct {
	stmts []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.stmts = append(r.stmts, sql)
}

func dryRunDB(t *testing.T, rec *sqlRecorder) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun: true,
		Logger: rec,
	})
	require.NoError(t, err)
	return db
}

// The conflict probe must lock the matching rows, and it must not do so
// through an aggregate: Postgres rejects FOR UPDATE on count(*) queries.
func TestHasActiveAppointmentAt_QueryShape(t *testing.T) {
	rec := &sqlRecorder{}
	repo := NewAppointmentGormRepository(dryRunDB(t, rec))

	_, err := repo.HasActiveAppointmentAt(
		context.Background(),
		1,
		time.Date(2026, 4, 7, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NotEmpty(t, rec.stmts)

	sql := strings.ToLower(rec.stmts[len(rec.stmts)-1])
	assert.Contains(t, sql, "for update")
	assert.NotContains(t, sql, "count(")
	assert.Contains(t, sql, "barber_id")
	assert.Contains(t, sql, "scheduled_at")
	assert.Contains(t, sql, "status <>")
}
