package friends

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingreng/pingr-server/internal/shared"
)

func TestInsertPair_BothHalvesInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO friend_links").
		WithArgs("id-a", "id-b", "bobby1", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO friend_links").
		WithArgs("id-b", "id-a", "alice77", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPostgresRepository(db)
	err = repo.InsertPair(context.Background(),
		Link{OwnerID: "id-a", PeerID: "id-b", PeerUsername: "bobby1", Requestor: true},
		Link{OwnerID: "id-b", PeerID: "id-a", PeerUsername: "alice77", Requestor: false},
	)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPair_SecondHalfFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO friend_links").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO friend_links").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewPostgresRepository(db)
	err = repo.InsertPair(context.Background(),
		Link{OwnerID: "id-a", PeerID: "id-b"},
		Link{OwnerID: "id-b", PeerID: "id-a"},
	)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_NoRowsMapsToNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM friend_links").
		WithArgs("id-a", "id-b").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}))

	repo := NewPostgresRepository(db)
	_, err = repo.Find(context.Background(), "id-a", "id-b")

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
