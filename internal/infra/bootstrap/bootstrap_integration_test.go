package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"happyshop/config"
	"happyshop/internal/infra/auth"
	"happyshop/internal/infra/persistence/model"
)

// openTestDB connects to the database named by HAPPYSHOP_TEST_DSN, or skips
// the test when none is configured. These tests are destructive: they drop
// and recreate the managed tables.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("HAPPYSHOP_TEST_DSN")
	if dsn == "" {
		t.Skip("HAPPYSHOP_TEST_DSN not set, skipping database integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db
}

func newTestBootstrapper(t *testing.T, db *gorm.DB) *Bootstrapper {
	t.Helper()

	workDir := filepath.Join(t.TempDir(), "images")
	backupDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "0001.jpg"), []byte("tv"), 0o644))

	return New(db, auth.NewBcryptHasherWithCost(4), &config.BootstrapConfig{
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		ImageDir:       workDir,
		ImageBackupDir: backupDir,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBootstrapper_Run_SeedsExpectedState(t *testing.T) {
	db := openTestDB(t)
	b := newTestBootstrapper(t, db)
	ctx := context.Background()

	require.NoError(t, b.Run(ctx))

	var products []model.ProductModel
	require.NoError(t, db.Order("product_id").Find(&products).Error)
	require.Len(t, products, 12)
	assert.Equal(t, SeedProducts(), products)

	var users []model.UserModel
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "ADMIN", users[0].Role)
	// The stored digest is never the plaintext default.
	assert.NotEqual(t, "admin123", users[0].PasswordHash)
	assert.True(t, auth.NewBcryptHasherWithCost(4).Check("admin123", users[0].PasswordHash))
}

func TestBootstrapper_Run_TwiceIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	b := newTestBootstrapper(t, db)
	ctx := context.Background()

	require.NoError(t, b.Run(ctx))
	require.NoError(t, b.Run(ctx))

	var productCount, userCount int64
	require.NoError(t, db.Model(&model.ProductModel{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&model.UserModel{}).Count(&userCount).Error)
	assert.EqualValues(t, 12, productCount)
	assert.EqualValues(t, 1, userCount)
}

func TestBootstrapper_InitializeSchema_KeepsExistingUserTableAndAdmin(t *testing.T) {
	db := openTestDB(t)
	b := newTestBootstrapper(t, db)
	ctx := context.Background()

	require.NoError(t, b.ClearTables(ctx))

	// A surviving user table with a seeded admin must not fail the phase:
	// both conflicts roll back to their savepoints and the transaction
	// continues through the product seed.
	require.NoError(t, db.Migrator().CreateTable(&model.UserModel{}))
	existing := model.UserModel{Username: "admin", PasswordHash: "prior-hash", Role: "ADMIN"}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, b.InitializeSchema(ctx))

	var users []model.UserModel
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "prior-hash", users[0].PasswordHash)

	var productCount int64
	require.NoError(t, db.Model(&model.ProductModel{}).Count(&productCount).Error)
	assert.EqualValues(t, 12, productCount)

	require.NoError(t, b.ClearTables(ctx))
}

func TestBootstrapper_InitializeSchema_RollsBackOnProductConflict(t *testing.T) {
	db := openTestDB(t)
	b := newTestBootstrapper(t, db)
	ctx := context.Background()

	require.NoError(t, b.ClearTables(ctx))

	// A pre-existing product table makes the non-swallowed create step fail,
	// which must roll back the whole phase, user table included.
	require.NoError(t, db.Exec("CREATE TABLE product_table (product_id CHAR(4) PRIMARY KEY)").Error)
	require.Error(t, b.InitializeSchema(ctx))

	assert.False(t, db.Migrator().HasTable(&model.UserModel{}))

	var productCount int64
	require.NoError(t, db.Table("product_table").Count(&productCount).Error)
	assert.Zero(t, productCount)

	require.NoError(t, b.ClearTables(ctx))
}
