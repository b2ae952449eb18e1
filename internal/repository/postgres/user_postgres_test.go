package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/model"
)

func TestUserPostgres_FindByPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()
	cols := []string{"id", "name", "phone", "company_id", "jwt_deactivated_until"}

	t.Run("active", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE phone = ?").
			WithArgs("+70000000001").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u-1", "Ann", "+70000000001", "co-1", nil))

		u, err := repo.FindByPhone(ctx, "+70000000001")

		require.NoError(t, err)
		assert.Nil(t, u.JWTDeactivatedUntil)
	})

	t.Run("deactivated", func(t *testing.T) {
		until := time.Now().Add(time.Hour).UTC()
		mock.ExpectQuery("SELECT (.+) FROM users WHERE phone = (.+) AND company_id").
			WithArgs("+70000000002", "co-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u-2", "Bob", "+70000000002", "co-1", until))

		u, err := repo.FindByPhoneInCompany(ctx, "+70000000002", "co-1")

		require.NoError(t, err)
		require.NotNil(t, u.JWTDeactivatedUntil)
		assert.True(t, u.LoginBlocked(time.Now()))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_AccessFacts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()
	factColumns := []string{"owner_id", "access_level", "in_company"}

	t.Run("grant present", func(t *testing.T) {
		mock.ExpectQuery("FROM companies c").
			WithArgs("u-1", "co-1", "wh-1").
			WillReturnRows(sqlmock.NewRows(factColumns).AddRow("u-9", "admin", true))

		facts, err := repo.AccessFacts(ctx, "u-1", "co-1", "wh-1")

		require.NoError(t, err)
		assert.Equal(t, "u-9", facts.OwnerID)
		assert.Equal(t, model.AccessAdmin, facts.Level)
		assert.True(t, facts.WarehouseInCompany)
	})

	t.Run("no grant", func(t *testing.T) {
		mock.ExpectQuery("FROM companies c").
			WithArgs("u-2", "co-1", "wh-1").
			WillReturnRows(sqlmock.NewRows(factColumns).AddRow("u-9", "", true))

		facts, err := repo.AccessFacts(ctx, "u-2", "co-1", "wh-1")

		require.NoError(t, err)
		assert.Empty(t, facts.Level)
	})

	t.Run("warehouse of another company", func(t *testing.T) {
		mock.ExpectQuery("FROM companies c").
			WithArgs("u-9", "co-1", "wh-B").
			WillReturnRows(sqlmock.NewRows(factColumns).AddRow("u-9", "", false))

		facts, err := repo.AccessFacts(ctx, "u-9", "co-1", "wh-B")

		require.NoError(t, err)
		assert.Equal(t, "u-9", facts.OwnerID)
		assert.False(t, facts.WarehouseInCompany)
	})

	t.Run("unknown company", func(t *testing.T) {
		mock.ExpectQuery("FROM companies c").
			WithArgs("u-1", "co-x", "wh-1").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.AccessFacts(ctx, "u-1", "co-x", "wh-1")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
