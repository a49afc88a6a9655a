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
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{
		"id", "name_en", "name_bn", "phone_en", "phone_bn", "email",
		"password_hash", "created_at", "updated_at",
		"role_id", "role_name_en", "role_name_bn", "role_created_at", "role_updated_at",
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "Admin", "", "", "", "admin@example.com", "$2a$10$hash", now, now,
			4, "Editor", "", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("admin@example.com").
		WillReturnRows(rows)

	permissionRows := sqlmock.NewRows([]string{"id", "group_title", "name_en", "name_bn"}).
		AddRow(10, "News", "news.create", "").
		AddRow(11, "News", "news.update", "")

	mock.ExpectQuery("SELECT (.+) FROM permissions").
		WithArgs(int64(4)).
		WillReturnRows(permissionRows)

	found, err := repo.FindUserByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 1 {
		t.Errorf("expected ID=1, got %d", found.ID)
	}
	if found.Role == nil {
		t.Fatal("expected role to be resolved")
	}
	if found.Role.ID != 4 {
		t.Errorf("expected role ID=4, got %d", found.Role.ID)
	}
	if len(found.Role.Permissions) != 2 {
		t.Errorf("expected 2 permissions, got %d", len(found.Role.Permissions))
	}
}

func TestFindUserByEmail_NoRole(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(2, "Jane", "", "", "", "jane@example.com", "$2a$10$hash", now, now,
			nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Role != nil {
		t.Errorf("expected nil role, got %+v", found.Role)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Errorf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		NameEn:       "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         &models.Role{ID: 4},
	}

	rows := sqlmock.NewRows([]string{
		"id", "name_en", "name_bn", "phone_en", "phone_bn", "email",
		"password_hash", "created_at", "updated_at",
	}).AddRow(7, user.NameEn, "", "", "", user.Email, user.PasswordHash, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.NameEn, "", "", "", user.Email, user.PasswordHash, int64(4)).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if created.Role == nil || created.Role.ID != 4 {
		t.Errorf("expected role to be carried through, got %+v", created.Role)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}
