package postgres

import (
	"context"
	"testing"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(owner uuid.UUID) *domain.Account {
	ct := []byte("engine_ciphertext_bytes")
	return &domain.Account{
		OwnerID:         owner,
		TotalHandle:     domain.HandleOf(ct),
		TotalCiphertext: ct,
		HasTotal:        true,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func accountColumnNames() []string {
	return []string{"owner_id", "total_handle", "total_ciphertext", "has_total", "created_at", "updated_at"}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumnNames()).AddRow(
		a.OwnerID, a.TotalHandle[:], a.TotalCiphertext, a.HasTotal,
		a.CreatedAt, a.UpdatedAt,
	)
}

func TestAccountRepo_GetByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE owner_id").
		WithArgs(a.OwnerID).
		WillReturnRows(accountRow(a))

	result, err := repo.GetByOwner(context.Background(), a.OwnerID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.OwnerID, result.OwnerID)
	assert.Equal(t, a.TotalHandle, result.TotalHandle)
	assert.Equal(t, a.TotalCiphertext, result.TotalCiphertext)
	assert.True(t, result.HasTotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByOwner_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	owner := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE owner_id").
		WithArgs(owner).
		WillReturnRows(pgxmock.NewRows(accountColumnNames()))

	result, err := repo.GetByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByOwnerForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE owner_id .+ FOR UPDATE").
		WithArgs(a.OwnerID).
		WillReturnRows(accountRow(a))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByOwnerForUpdate(context.Background(), tx, a.OwnerID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.TotalHandle, result.TotalHandle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Ensure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)INSERT INTO accounts.+ON CONFLICT \(owner_id\) DO NOTHING`).
		WithArgs(owner).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Ensure(context.Background(), tx, owner)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Ensure_RowAlreadyExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	owner := uuid.New()

	mock.ExpectBegin()
	// The conflict clause swallows the duplicate; zero rows affected is not
	// an error.
	mock.ExpectExec(`(?s)INSERT INTO accounts.+ON CONFLICT \(owner_id\) DO NOTHING`).
		WithArgs(owner).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Ensure(context.Background(), tx, owner)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(a.OwnerID, a.TotalHandle[:], a.TotalCiphertext, a.HasTotal,
			a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Save(context.Background(), tx, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
