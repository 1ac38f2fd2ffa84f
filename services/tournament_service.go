package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
	"github.com/bhorvath/fixturegen/storage"
)

type TournamentService interface {
	Create(ctx context.Context, ownerID int, input CreateTournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	GetDetails(ctx context.Context, id int) (*models.Tournament, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Tournament, error)
	Update(ctx context.Context, userID, id int, input UpdateTournamentInput) (*models.Tournament, error)
	Delete(ctx context.Context, userID, id int) error
	UploadLogo(ctx context.Context, userID, id int, contentType string, file io.Reader) (*models.Tournament, error)
}

type CreateTournamentInput struct {
	Name               string                  `json:"name"`
	Description        *string                 `json:"description"`
	Format             models.TournamentFormat `json:"format"`
	Rounds             *int                    `json:"rounds"`
	PointsForWin       *int                    `json:"points_for_win"`
	PointsForDraw      *int                    `json:"points_for_draw"`
	HasThirdPlaceMatch bool                    `json:"has_third_place_match"`
}

type UpdateTournamentInput struct {
	Name               *string                  `json:"name"`
	Description        *string                  `json:"description"`
	Format             *models.TournamentFormat `json:"format"`
	Rounds             *int                     `json:"rounds"`
	PointsForWin       *int                     `json:"points_for_win"`
	PointsForDraw      *int                     `json:"points_for_draw"`
	HasThirdPlaceMatch *bool                    `json:"has_third_place_match"`
}

const minTournamentNameLength = 6

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	refereeRepo    repositories.RefereeRepository
	venueRepo      repositories.VenueRepository
	scheduleRepo   repositories.ScheduleRepository
	matchRepo      repositories.MatchRepository
	uploader       storage.FileUploader
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	refereeRepo repositories.RefereeRepository,
	venueRepo repositories.VenueRepository,
	scheduleRepo repositories.ScheduleRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		refereeRepo:    refereeRepo,
		venueRepo:      venueRepo,
		scheduleRepo:   scheduleRepo,
		matchRepo:      matchRepo,
		uploader:       uploader,
	}
}

func (s *tournamentService) Create(ctx context.Context, ownerID int, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}
	if len(name) < minTournamentNameLength {
		return nil, ErrTournamentNameTooShort
	}
	if !input.Format.Valid() {
		return nil, ErrInvalidFormat
	}

	tournament := &models.Tournament{
		Name:               name,
		Description:        input.Description,
		OwnerID:            ownerID,
		Format:             input.Format,
		Rounds:             defaultRounds(input.Format, input.Rounds),
		PointsForWin:       derefIntOr(input.PointsForWin, 3),
		PointsForDraw:      derefIntOr(input.PointsForDraw, 1),
		HasThirdPlaceMatch: input.HasThirdPlaceMatch,
		Status:             models.StatusOnHold,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	s.populateLogoURL(tournament)
	return tournament, nil
}

// GetDetails loads the tournament together with its roster, officials,
// venues, schedule and matches. The relation loads run in parallel.
func (s *tournamentService) GetDetails(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, loadErr := s.teamRepo.ListByTournament(gCtx, id)
		if loadErr != nil {
			return fmt.Errorf("failed to load teams: %w", loadErr)
		}
		tournament.Teams = make([]models.Team, len(teams))
		for i, team := range teams {
			s.populateCrestURL(team)
			tournament.Teams[i] = *team
		}
		return nil
	})
	g.Go(func() error {
		referees, loadErr := s.refereeRepo.ListByTournament(gCtx, id)
		if loadErr != nil {
			return fmt.Errorf("failed to load referees: %w", loadErr)
		}
		tournament.Referees = make([]models.Referee, len(referees))
		for i, referee := range referees {
			tournament.Referees[i] = *referee
		}
		return nil
	})
	g.Go(func() error {
		venues, loadErr := s.venueRepo.ListByTournament(gCtx, id)
		if loadErr != nil {
			return fmt.Errorf("failed to load venues: %w", loadErr)
		}
		tournament.Venues = make([]models.Venue, len(venues))
		for i, venue := range venues {
			tournament.Venues[i] = *venue
		}
		return nil
	})
	g.Go(func() error {
		windows, loadErr := s.scheduleRepo.ListByTournament(gCtx, id)
		if loadErr != nil {
			return fmt.Errorf("failed to load schedule: %w", loadErr)
		}
		tournament.Schedule = windows
		return nil
	})
	g.Go(func() error {
		matches, loadErr := s.matchRepo.ListByTournament(gCtx, id)
		if loadErr != nil {
			return fmt.Errorf("failed to load matches: %w", loadErr)
		}
		tournament.Matches = make([]models.Match, len(matches))
		for i, match := range matches {
			tournament.Matches[i] = *match
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *tournamentService) ListByOwner(ctx context.Context, ownerID int) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	for i := range tournaments {
		s.populateLogoURL(&tournaments[i])
	}
	return tournaments, nil
}

func (s *tournamentService) Update(ctx context.Context, userID, id int, input UpdateTournamentInput) (*models.Tournament, error) {
	tournament, err := s.requireEditable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTournamentNameRequired
		}
		if len(name) < minTournamentNameLength {
			return nil, ErrTournamentNameTooShort
		}
		tournament.Name = name
	}
	if input.Description != nil {
		tournament.Description = input.Description
	}
	if input.Format != nil {
		if !input.Format.Valid() {
			return nil, ErrInvalidFormat
		}
		tournament.Format = *input.Format
	}
	if input.Rounds != nil {
		tournament.Rounds = defaultRounds(tournament.Format, input.Rounds)
	}
	if input.PointsForWin != nil {
		tournament.PointsForWin = *input.PointsForWin
	}
	if input.PointsForDraw != nil {
		tournament.PointsForDraw = *input.PointsForDraw
	}
	if input.HasThirdPlaceMatch != nil {
		tournament.HasThirdPlaceMatch = *input.HasThirdPlaceMatch
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) Delete(ctx context.Context, userID, id int) error {
	tournament, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if tournament.LogoKey != nil && s.uploader != nil {
		if delErr := s.uploader.Delete(ctx, *tournament.LogoKey); delErr != nil {
			return fmt.Errorf("tournament deleted, failed to remove logo: %w", delErr)
		}
	}
	return nil
}

func (s *tournamentService) UploadLogo(ctx context.Context, userID, id int, contentType string, file io.Reader) (*models.Tournament, error) {
	tournament, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, errors.New("file storage is not configured")
	}

	key := fmt.Sprintf("tournaments/%d/logo", id)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}
	if err := s.tournamentRepo.UpdateLogoKey(ctx, id, &key); err != nil {
		return nil, fmt.Errorf("failed to store logo key: %w", err)
	}
	tournament.LogoKey = &key
	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) requireOwner(ctx context.Context, userID, id int) (*models.Tournament, error) {
	tournament, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.OwnerID != userID {
		return nil, ErrForbiddenOperation
	}
	return tournament, nil
}

// requireEditable is requireOwner plus the generated-status gate: once
// matches exist, the tournament is read-only.
func (s *tournamentService) requireEditable(ctx context.Context, userID, id int) (*models.Tournament, error) {
	tournament, err := s.requireOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if tournament.Status == models.StatusGenerated {
		return nil, ErrTournamentLocked
	}
	return tournament, nil
}

func (s *tournamentService) populateLogoURL(t *models.Tournament) {
	if t.LogoKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*t.LogoKey)
		t.LogoURL = &url
	}
}

func (s *tournamentService) populateCrestURL(team *models.Team) {
	if team.CrestKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*team.CrestKey)
		team.CrestURL = &url
	}
}

func defaultRounds(format models.TournamentFormat, rounds *int) int {
	if format.IsElimination() {
		return 1
	}
	if rounds == nil || *rounds < 1 {
		if format == models.FormatLeague {
			return 2
		}
		return 1
	}
	return *rounds
}

func derefIntOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
