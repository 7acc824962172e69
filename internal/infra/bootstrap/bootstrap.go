// Package bootstrap implements the destructive database reset procedure: it
// drops and recreates the schema, seeds reference data, and resynchronizes
// the image asset folder from its backup. It is intended for first-time
// initialization or a full reset, never for routine operation.
package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"happyshop/config"
	"happyshop/internal/domain/entity"
	"happyshop/internal/domain/service"
	"happyshop/internal/infra/persistence/model"
	"happyshop/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bootstrapMu serializes every bootstrap phase process-wide. All phases
// mutate shared database and filesystem state that must not be observed
// mid-transition by a concurrent bootstrap attempt.
var bootstrapMu sync.Mutex

// tableNames lists the managed tables in drop order.
var tableNames = []string{
	model.ProductModel{}.TableName(),
	model.UserModel{}.TableName(),
}

// Bootstrapper executes the four reset phases in order.
type Bootstrapper struct {
	db     *gorm.DB
	hasher service.PasswordHasher
	cfg    *config.BootstrapConfig
	logger *slog.Logger
}

// New constructs a Bootstrapper. Missing bootstrap configuration falls back
// to the conventional defaults of the demo store.
func New(db *gorm.DB, hasher service.PasswordHasher, cfg *config.BootstrapConfig, logger *slog.Logger) *Bootstrapper {
	if cfg == nil {
		cfg = &config.BootstrapConfig{}
	}
	applyDefaults(cfg)

	return &Bootstrapper{
		db:     db,
		hasher: hasher,
		cfg:    cfg,
		logger: logger,
	}
}

func applyDefaults(cfg *config.BootstrapConfig) {
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = defaultAdminUsername
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = defaultAdminPassword
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = defaultImageDir
	}
	if cfg.ImageBackupDir == "" {
		cfg.ImageBackupDir = defaultImageBackupDir
	}
}

// Run executes all four phases strictly in order: clear, recreate+seed,
// verify, asset resync. Each phase acquires the process-wide lock for its
// duration and releases it on every exit path.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.ClearTables(ctx); err != nil {
		return err
	}
	if err := b.InitializeSchema(ctx); err != nil {
		return err
	}
	if err := b.Verify(ctx); err != nil {
		return err
	}

	return b.SyncAssets(ctx)
}

// ClearTables drops every managed table. A table that does not exist is
// logged and skipped; any other failure aborts the phase.
func (b *Bootstrapper) ClearTables(ctx context.Context) error {
	bootstrapMu.Lock()
	defer bootstrapMu.Unlock()

	for _, table := range tableNames {
		err := b.db.WithContext(ctx).Exec("DROP TABLE " + table).Error
		if err == nil {
			b.logger.Info("dropped table", slog.String("table", table))

			continue
		}

		if postgres.Classify(err) == postgres.ErrClassUndefinedObject {
			b.logger.Info("table does not exist, skipping", slog.String("table", table))

			continue
		}

		return errors.Wrapf(err, "failed to drop table %s", table)
	}

	return nil
}

// InitializeSchema recreates both tables and seeds them inside one explicit
// transaction. The user-table creation and the admin seed tolerate benign
// conflicts (already exists / duplicate) via savepoints; any failure in
// product-table creation or product seeding rolls back the whole
// transaction and is surfaced. Either every seed row exists after this
// phase or none does.
func (b *Bootstrapper) InitializeSchema(ctx context.Context) error {
	bootstrapMu.Lock()
	defer bootstrapMu.Unlock()

	// The hash is CPU-bound; compute it before opening the transaction.
	adminHash, err := b.hasher.Hash(b.cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed admin password")
	}

	tx := b.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin bootstrap transaction")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := b.createUserTable(tx); err != nil {
		tx.Rollback()

		return err
	}

	if err := b.seedAdminUser(tx, adminHash); err != nil {
		tx.Rollback()

		return err
	}

	if err := b.createAndSeedProducts(tx); err != nil {
		tx.Rollback()

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit bootstrap transaction")
	}

	b.logger.Info("schema and seed data initialized")

	return nil
}

// createUserTable creates the user table inside the transaction. A benign
// "already exists" conflict is rolled back to the savepoint and swallowed;
// PostgreSQL would otherwise abort the whole transaction on the failed
// statement.
func (b *Bootstrapper) createUserTable(tx *gorm.DB) error {
	const savepoint = "before_user_table"

	if err := tx.SavePoint(savepoint).Error; err != nil {
		return errors.Wrapf(err, "failed to set savepoint %s", savepoint)
	}
	if err := tx.Migrator().CreateTable(&model.UserModel{}); err != nil {
		if postgres.Classify(err) == postgres.ErrClassDuplicateObject {
			b.logger.Info("user table already exists, keeping it")

			if rbErr := tx.RollbackTo(savepoint).Error; rbErr != nil {
				return errors.Wrapf(rbErr, "failed to roll back to savepoint %s", savepoint)
			}

			return nil
		}

		return errors.Wrap(err, "failed to create user table")
	}
	b.logger.Info("user table created")

	return nil
}

// seedAdminUser inserts the well-known administrative account. A duplicate
// (admin already present from an earlier run) is rolled back to the
// savepoint and swallowed.
func (b *Bootstrapper) seedAdminUser(tx *gorm.DB, adminHash string) error {
	const savepoint = "before_admin_seed"

	admin := model.UserModel{
		Username:     entity.NormalizeUsername(b.cfg.AdminUsername),
		PasswordHash: adminHash,
		Role:         entity.RoleAdmin.String(),
		CreatedAt:    time.Now(),
	}

	if err := tx.SavePoint(savepoint).Error; err != nil {
		return errors.Wrapf(err, "failed to set savepoint %s", savepoint)
	}
	if err := tx.Create(&admin).Error; err != nil {
		if postgres.Classify(err) == postgres.ErrClassUniqueViolation {
			b.logger.Info("seed admin already exists, skipping",
				slog.String("username", admin.Username))

			if rbErr := tx.RollbackTo(savepoint).Error; rbErr != nil {
				return errors.Wrapf(rbErr, "failed to roll back to savepoint %s", savepoint)
			}

			return nil
		}

		return errors.Wrap(err, "failed to seed admin user")
	}
	b.logger.Info("seed admin user created", slog.String("username", admin.Username))

	return nil
}

// createAndSeedProducts creates the product table and batch-inserts the
// fixed seed rows. Unlike the user-table steps, nothing here is swallowed:
// any failure fails the whole phase.
func (b *Bootstrapper) createAndSeedProducts(tx *gorm.DB) error {
	if err := tx.Migrator().CreateTable(&model.ProductModel{}); err != nil {
		return errors.Wrap(err, "failed to create product table")
	}

	products := SeedProducts()
	if err := tx.Create(&products).Error; err != nil {
		return errors.Wrap(err, "failed to seed products")
	}
	b.logger.Info("product table created and seeded", slog.Int("rows", len(products)))

	return nil
}

// Verify reads back and logs every row of both tables. Diagnostic only; no
// mutation.
func (b *Bootstrapper) Verify(ctx context.Context) error {
	bootstrapMu.Lock()
	defer bootstrapMu.Unlock()

	var products []model.ProductModel
	if err := b.db.WithContext(ctx).Order("product_id").Find(&products).Error; err != nil {
		return errors.Wrap(err, "failed to read back products")
	}
	for _, p := range products {
		b.logger.Info("product row",
			slog.String("productID", p.ProductID),
			slog.String("description", p.Description),
			slog.Float64("unitPrice", p.UnitPrice),
			slog.Int("inStock", p.InStock),
			slog.String("image", p.Image),
		)
	}

	var users []model.UserModel
	if err := b.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		return errors.Wrap(err, "failed to read back users")
	}
	for _, u := range users {
		b.logger.Info("user row",
			slog.Int64("userID", u.UserID),
			slog.String("username", u.Username),
			slog.String("role", u.Role),
			slog.Time("createdAt", u.CreatedAt),
		)
	}

	return nil
}
