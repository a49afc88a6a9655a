package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It maintains the token ledger: one row per issued
// access token, flagged expired+revoked once superseded.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// FindAllLiveTokensByUser returns every token row of the user with both
// flags clear. An empty result is not an error.
func (r *tokenRepository) FindAllLiveTokensByUser(ctx context.Context, userID int64) ([]models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLiveTokensQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindAllLiveTokensByUser").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindAllLiveTokensByUser").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]models.Token, 0)
	for rows.Next() {
		var token models.Token
		if err := scanToken(rows, &token); err != nil {
			log.Err(err).Str("func", "*tokenRepository.FindAllLiveTokensByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tokens, nil
}

// RevokeAllLiveTokens sets both flags on every live token row of the user
// and returns the number of rows changed. Calling it when the user has no
// live tokens is a no-op returning zero.
func (r *tokenRepository) RevokeAllLiveTokens(ctx context.Context, userID int64) (int64, error) {
	return revokeAllLiveTokens(ctx, r.db.DB, userID)
}

// SaveToken inserts a new token row with both flags clear and returns the
// persisted row with server-assigned fields (ID, CreatedAt).
func (r *tokenRepository) SaveToken(ctx context.Context, token models.Token) (models.Token, error) {
	return saveToken(ctx, r.db.DB, token.UserID, token.Token, token.TokenType)
}

// RevokeAndSave revokes every live token of the user and records the newly
// issued one inside a single transaction.
//
// The UPDATE takes row locks on the user's live token rows, so two
// concurrent logins for the same user serialize here: whichever commits
// second sees the first login's row as live and revokes it. After either
// ordering exactly one live row remains.
func (r *tokenRepository) RevokeAndSave(ctx context.Context, userID int64, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.RevokeAndSave").Msg("error: begin transaction failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// revoke first: the new row must never be part of the swept set
	if _, err := revokeAllLiveTokens(ctx, tx, userID); err != nil {
		return models.Token{}, err
	}

	token, err := saveToken(ctx, tx, userID, tokenString, models.TokenTypeBearer)
	if err != nil {
		return models.Token{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.RevokeAndSave").Msg("error: commit failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return token, nil
}

// execer abstracts *sql.DB and *sql.Tx so the revoke and insert helpers
// run both standalone and inside RevokeAndSave's transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func revokeAllLiveTokens(ctx context.Context, db execer, userID int64) (int64, error) {
	query, args, err := buildRevokeLiveTokensQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func saveToken(ctx context.Context, db execer, userID int64, tokenString, tokenType string) (models.Token, error) {
	query, args, err := buildInsertTokenQuery(userID, tokenString, tokenType)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.Token
	row := db.QueryRowContext(ctx, query, args...)
	if err := scanToken(row, &token); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenNotSaved, err)
	}

	return token, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanToken(row rowScanner, token *models.Token) error {
	return row.Scan(
		&token.ID, &token.UserID, &token.Token, &token.TokenType,
		&token.Expired, &token.Revoked, &token.CreatedAt,
	)
}
