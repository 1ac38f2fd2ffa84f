package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

// withTransaction runs fn inside a transaction, rolling back on error or
// panic and committing otherwise.
func withTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// requireEditableTournament loads the tournament and verifies the caller owns
// it and that no generated matches lock it.
func requireEditableTournament(ctx context.Context, repo repositories.TournamentRepository, userID, tournamentID int) (*models.Tournament, error) {
	tournament, err := repo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	if tournament.OwnerID != userID {
		return nil, ErrForbiddenOperation
	}
	if tournament.Status == models.StatusGenerated {
		return nil, ErrTournamentLocked
	}
	return tournament, nil
}
