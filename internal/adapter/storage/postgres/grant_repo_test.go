package postgres

import (
	"context"
	"testing"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGrantRepo(mock)
	g := domain.OwnerGrant(domain.HandleOf([]byte("ct")), uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO grants").
		WithArgs(g.Handle[:], string(g.Kind), g.GranteeID, g.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, g)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantRepo_Create_DuplicateAbsorbed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGrantRepo(mock)
	g := domain.PublicGrant(domain.HandleOf([]byte("ct")))

	mock.ExpectBegin()
	// ON CONFLICT DO NOTHING: zero rows affected is still success.
	mock.ExpectExec("INSERT INTO grants").
		WithArgs(g.Handle[:], string(g.Kind), g.GranteeID, g.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, g)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantRepo_Exists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGrantRepo(mock)
	handle := domain.HandleOf([]byte("ct"))
	grantee := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(handle[:], string(domain.GranteeIdentity), grantee).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), handle, domain.GranteeIdentity, grantee)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantRepo_ListByHandle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGrantRepo(mock)
	handle := domain.HandleOf([]byte("ct"))
	owner := uuid.New()

	system := domain.SystemGrant(handle)
	ownerGrant := domain.OwnerGrant(handle, owner)

	mock.ExpectQuery("SELECT .+ FROM grants").
		WithArgs(handle[:]).
		WillReturnRows(pgxmock.NewRows([]string{"handle", "kind", "grantee_id", "created_at"}).
			AddRow(system.Handle[:], string(system.Kind), system.GranteeID, system.CreatedAt).
			AddRow(ownerGrant.Handle[:], string(ownerGrant.Kind), ownerGrant.GranteeID, ownerGrant.CreatedAt))

	grants, err := repo.ListByHandle(context.Background(), handle)
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, domain.GranteeSystem, grants[0].Kind)
	assert.Equal(t, domain.GranteeIdentity, grants[1].Kind)
	assert.Equal(t, owner, grants[1].GranteeID)
	assert.Equal(t, handle, grants[0].Handle)
	assert.NoError(t, mock.ExpectationsWereMet())
}
