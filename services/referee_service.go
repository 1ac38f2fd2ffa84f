package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

type RefereeService interface {
	Create(ctx context.Context, userID, tournamentID int, name string) (*models.Referee, error)
	Update(ctx context.Context, userID, tournamentID, refereeID int, name string) (*models.Referee, error)
	Delete(ctx context.Context, userID, tournamentID, refereeID int) error
	List(ctx context.Context, tournamentID int) ([]*models.Referee, error)
}

type refereeService struct {
	refereeRepo    repositories.RefereeRepository
	tournamentRepo repositories.TournamentRepository
}

func NewRefereeService(refereeRepo repositories.RefereeRepository, tournamentRepo repositories.TournamentRepository) RefereeService {
	return &refereeService{refereeRepo: refereeRepo, tournamentRepo: tournamentRepo}
}

func (s *refereeService) Create(ctx context.Context, userID, tournamentID int, name string) (*models.Referee, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	referee := &models.Referee{TournamentID: tournamentID, Name: name}
	if err := s.refereeRepo.Create(ctx, referee); err != nil {
		return nil, fmt.Errorf("failed to create referee: %w", err)
	}
	return referee, nil
}

func (s *refereeService) Update(ctx context.Context, userID, tournamentID, refereeID int, name string) (*models.Referee, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	referee := &models.Referee{ID: refereeID, TournamentID: tournamentID, Name: name}
	if err := s.refereeRepo.Update(ctx, referee); err != nil {
		if errors.Is(err, repositories.ErrRefereeNotFound) {
			return nil, ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to update referee: %w", err)
	}
	return referee, nil
}

func (s *refereeService) Delete(ctx context.Context, userID, tournamentID, refereeID int) error {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return err
	}
	if err := s.refereeRepo.Delete(ctx, tournamentID, refereeID); err != nil {
		if errors.Is(err, repositories.ErrRefereeNotFound) {
			return ErrRefereeNotFound
		}
		return fmt.Errorf("failed to delete referee: %w", err)
	}
	return nil
}

func (s *refereeService) List(ctx context.Context, tournamentID int) ([]*models.Referee, error) {
	referees, err := s.refereeRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referees: %w", err)
	}
	return referees, nil
}
