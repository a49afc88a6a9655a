package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/models"
)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tokenRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func tokenColumns() []string {
	return []string{"id", "user_id", "token", "token_type", "expired", "revoked", "created_at"}
}

func TestFindAllLiveTokensByUser_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(tokenColumns()).
		AddRow(1, 42, "jwt-1", models.TokenTypeBearer, false, false, now)

	mock.ExpectQuery("SELECT (.+) FROM tokens").
		WithArgs(false, false, int64(42)).
		WillReturnRows(rows)

	tokens, err := repo.FindAllLiveTokensByUser(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if !tokens[0].Live() {
		t.Errorf("expected token to be live, got %+v", tokens[0])
	}
}

func TestFindAllLiveTokensByUser_Empty(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM tokens").
		WithArgs(false, false, int64(42)).
		WillReturnRows(sqlmock.NewRows(tokenColumns()))

	tokens, err := repo.FindAllLiveTokensByUser(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %d", len(tokens))
	}
}

func TestRevokeAllLiveTokens_NoLiveTokensIsNoop(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	// two consecutive sweeps, both affecting zero rows, both succeed
	mock.ExpectExec("UPDATE tokens").
		WithArgs(true, true, false, false, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE tokens").
		WithArgs(true, true, false, false, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	for i := 0; i < 2; i++ {
		affected, err := repo.RevokeAllLiveTokens(ctx, 42)
		if err != nil {
			t.Fatalf("sweep %d: unexpected error: %v", i+1, err)
		}
		if affected != 0 {
			t.Errorf("sweep %d: expected 0 rows affected, got %d", i+1, affected)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRevokeAndSave_RevokesThenInserts(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tokens").
		WithArgs(true, true, false, false, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("INSERT INTO tokens").
		WithArgs(int64(42), "new-jwt", models.TokenTypeBearer, false, false).
		WillReturnRows(sqlmock.NewRows(tokenColumns()).
			AddRow(3, 42, "new-jwt", models.TokenTypeBearer, false, false, now))
	mock.ExpectCommit()

	token, err := repo.RevokeAndSave(ctx, 42, "new-jwt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.ID != 3 {
		t.Errorf("expected ID=3, got %d", token.ID)
	}
	if !token.Live() {
		t.Errorf("expected new token to be live, got %+v", token)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRevokeAndSave_RollbackOnInsertFailure(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tokens").
		WithArgs(true, true, false, false, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO tokens").
		WithArgs(int64(42), "new-jwt", models.TokenTypeBearer, false, false).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := repo.RevokeAndSave(ctx, 42, "new-jwt")
	if !errors.Is(err, ErrTokenNotSaved) {
		t.Errorf("expected ErrTokenNotSaved, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO tokens").
		WithArgs(int64(42), "jwt-1", models.TokenTypeBearer, false, false).
		WillReturnRows(sqlmock.NewRows(tokenColumns()).
			AddRow(1, 42, "jwt-1", models.TokenTypeBearer, false, false, now))

	token, err := repo.SaveToken(ctx, models.Token{
		UserID:    42,
		Token:     "jwt-1",
		TokenType: models.TokenTypeBearer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.UserID != 42 || token.Token != "jwt-1" {
		t.Errorf("unexpected token row: %+v", token)
	}
}
