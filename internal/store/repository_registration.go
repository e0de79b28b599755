// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/jackc/pgerrcode"
)

// registrationRepository is the PostgreSQL-backed implementation of
// [RegistrationRepository] over the "registrations" table.
type registrationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRegistrationRepository constructs a [RegistrationRepository] backed by
// the provided database connection and logger.
func NewRegistrationRepository(db *DB, logger *logger.Logger) RegistrationRepository {
	logger.Debug().Msg("creating registration repository")
	return &registrationRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts reg and its frames in one transaction and returns reg with
// the database-assigned CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyRegistered].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
//   - Scan failure → wrapped [ErrScanningRow].
//   - Begin/commit failure → wrapped [ErrBeginningTransaction] or
//     [ErrCommitingTransaction].
func (r *registrationRepository) Save(ctx context.Context, reg models.Registration, frames []models.Frame) (models.Registration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRegistrationQuery(reg)
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*registrationRepository.Save").
			Int16("user_id", int16(reg.UserID)).
			Msg("failed to begin transaction")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).
			Str("func", "*registrationRepository.Save").
			Int16("user_id", int16(reg.UserID)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting registration")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Registration{}, ErrUserAlreadyRegistered
		default:
			return models.Registration{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = row.Scan(&reg.CreatedAt); err != nil {
		log.Err(err).Str("func", "*registrationRepository.Save").Msg("error: scanning error")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(frames) > 0 {
		if err = r.insertFrames(ctx, tx, frames); err != nil {
			return models.Registration{}, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*registrationRepository.Save").
			Int16("user_id", int16(reg.UserID)).
			Msg("failed to commit transaction")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "*registrationRepository.Save").
		Int16("user_id", int16(reg.UserID)).
		Int("frames", len(frames)).
		Msg("registration stored")

	return reg, nil
}

// insertFrames writes frames as a single multi-row INSERT inside tx.
func (r *registrationRepository) insertFrames(ctx context.Context, tx *sql.Tx, frames []models.Frame) error {
	query, args, err := buildInsertFramesQuery(frames)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*registrationRepository.insertFrames").
			Int("frames", len(frames)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting frames")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the registration recorded for userID.
func (r *registrationRepository) Get(ctx context.Context, userID models.SessionID) (models.Registration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRegistrationQuery(userID)
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reg models.Registration
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&reg.UserID, &reg.FrameCount, &reg.TotalBytes, &reg.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Registration{}, ErrRegistrationNotFound
	case err != nil:
		log.Err(err).Str("func", "*registrationRepository.Get").Int16("user_id", int16(userID)).Msg("error selecting registration")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reg, nil
}

// Count returns the number of rows in the registrations table.
func (r *registrationRepository) Count(ctx context.Context) (int, error) {
	query, args, err := buildCountRegistrationsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registrationRepository.Count").Msg("error counting registrations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
