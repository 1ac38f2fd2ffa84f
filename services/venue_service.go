package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

type VenueService interface {
	Create(ctx context.Context, userID, tournamentID int, input VenueInput) (*models.Venue, error)
	Update(ctx context.Context, userID, tournamentID, venueID int, input VenueInput) (*models.Venue, error)
	Delete(ctx context.Context, userID, tournamentID, venueID int) error
	List(ctx context.Context, tournamentID int) ([]*models.Venue, error)
}

type VenueInput struct {
	Name     string  `json:"name"`
	Capacity *int    `json:"capacity"`
	Address  *string `json:"address"`
}

type venueService struct {
	venueRepo      repositories.VenueRepository
	tournamentRepo repositories.TournamentRepository
}

func NewVenueService(venueRepo repositories.VenueRepository, tournamentRepo repositories.TournamentRepository) VenueService {
	return &venueService{venueRepo: venueRepo, tournamentRepo: tournamentRepo}
}

func (s *venueService) Create(ctx context.Context, userID, tournamentID int, input VenueInput) (*models.Venue, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	venue := &models.Venue{
		TournamentID: tournamentID,
		Name:         name,
		Capacity:     input.Capacity,
		Address:      input.Address,
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) Update(ctx context.Context, userID, tournamentID, venueID int, input VenueInput) (*models.Venue, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	venue := &models.Venue{
		ID:           venueID,
		TournamentID: tournamentID,
		Name:         name,
		Capacity:     input.Capacity,
		Address:      input.Address,
	}
	if err := s.venueRepo.Update(ctx, venue); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) Delete(ctx context.Context, userID, tournamentID, venueID int) error {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return err
	}
	if err := s.venueRepo.Delete(ctx, tournamentID, venueID); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

func (s *venueService) List(ctx context.Context, tournamentID int) ([]*models.Venue, error) {
	venues, err := s.venueRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}
