package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/salon_pos/internal/models"
	"github.com/Skotchmaster/salon_pos/internal/repo"
	pkgdb "github.com/Skotchmaster/salon_pos/pkg/db"
	"github.com/Skotchmaster/salon_pos/pkg/tokens"
)

type testEnv struct {
	Repo    *repo.GormRepo
	Auth    *AuthService
	Catalog *CatalogService
	Ledger  *LedgerService
	Sale    *SaleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	r := repo.New(db)
	if err := r.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &testEnv{
		Repo:    r,
		Auth:    &AuthService{Repo: r, Tokens: tokens.NewManager([]byte("test-jwt-secret"), 8*time.Hour)},
		Catalog: &CatalogService{Repo: r},
		Ledger:  &LedgerService{Repo: r, Loc: time.UTC},
		Sale:    &SaleService{Repo: r},
	}
}

func (env *testEnv) ledger(t *testing.T) []models.Transaction {
	t.Helper()
	rows, err := env.Repo.ListTransactions(context.Background())
	require.NoError(t, err)
	return rows
}

func (env *testEnv) product(t *testing.T, id uint) *models.Product {
	t.Helper()
	p, err := env.Repo.GetProduct(context.Background(), id)
	require.NoError(t, err)
	return p
}
