package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/bhorvath/fixturegen/brackets"
	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

type MatchService interface {
	List(ctx context.Context, tournamentID int) ([]*models.Match, error)
	// DeleteAll removes every match of the tournament and unlocks editing
	// by flipping the status back to onhold.
	DeleteAll(ctx context.Context, userID, tournamentID int) (int, error)
	Exists(ctx context.Context, tournamentID int) (bool, models.TournamentStatus, error)
}

type matchService struct {
	db             *sql.DB
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	hub            Broadcaster
}

func NewMatchService(db *sql.DB, matchRepo repositories.MatchRepository, tournamentRepo repositories.TournamentRepository, hub Broadcaster) MatchService {
	return &matchService{db: db, matchRepo: matchRepo, tournamentRepo: tournamentRepo, hub: hub}
}

func (s *matchService) List(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) DeleteAll(ctx context.Context, userID, tournamentID int) (int, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return 0, ErrTournamentNotFound
		}
		return 0, fmt.Errorf("failed to load tournament: %w", err)
	}
	if tournament.OwnerID != userID {
		return 0, ErrForbiddenOperation
	}

	var deleted int
	err = withTransaction(ctx, s.db, func(tx *sql.Tx) error {
		count, delErr := s.matchRepo.DeleteByTournament(ctx, tx, tournamentID)
		if delErr != nil {
			return fmt.Errorf("failed to delete matches: %w", delErr)
		}
		deleted = count
		if stErr := s.tournamentRepo.UpdateStatus(ctx, tx, tournamentID, models.StatusOnHold); stErr != nil {
			return fmt.Errorf("failed to update tournament status: %w", stErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(strconv.Itoa(tournamentID), brackets.Message{
			Type:    brackets.EventMatchesDeleted,
			Payload: map[string]int{"tournament_id": tournamentID, "deleted": deleted},
		})
	}
	return deleted, nil
}

func (s *matchService) Exists(ctx context.Context, tournamentID int) (bool, models.TournamentStatus, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return false, "", ErrTournamentNotFound
		}
		return false, "", fmt.Errorf("failed to load tournament: %w", err)
	}

	exists, err := s.matchRepo.ExistsByTournament(ctx, tournamentID)
	if err != nil {
		return false, "", fmt.Errorf("failed to check matches: %w", err)
	}
	return exists, tournament.Status, nil
}
