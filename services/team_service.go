package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
	"github.com/bhorvath/fixturegen/storage"
)

type TeamService interface {
	Create(ctx context.Context, userID, tournamentID int, input TeamInput) (*models.Team, error)
	Update(ctx context.Context, userID, tournamentID, teamID int, input TeamInput) (*models.Team, error)
	DeleteBatch(ctx context.Context, userID, tournamentID int, teamIDs []int) (int, error)
	List(ctx context.Context, tournamentID int) ([]*models.Team, error)
	SetStadium(ctx context.Context, userID, tournamentID, teamID int, input StadiumInput) (*models.Stadium, error)
	RemoveStadium(ctx context.Context, userID, tournamentID, teamID int) error
	UploadCrest(ctx context.Context, userID, tournamentID, teamID int, contentType string, file io.Reader) (*models.Team, error)
}

type TeamInput struct {
	Name string `json:"name"`
}

type StadiumInput struct {
	Name     string  `json:"name"`
	Capacity *int    `json:"capacity"`
	Address  *string `json:"address"`
}

type teamService struct {
	teamRepo       repositories.TeamRepository
	stadiumRepo    repositories.StadiumRepository
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	stadiumRepo repositories.StadiumRepository,
	tournamentRepo repositories.TournamentRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		stadiumRepo:    stadiumRepo,
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
	}
}

func (s *teamService) Create(ctx context.Context, userID, tournamentID int, input TeamInput) (*models.Team, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{TournamentID: tournamentID, Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) Update(ctx context.Context, userID, tournamentID, teamID int, input TeamInput) (*models.Team, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{ID: teamID, TournamentID: tournamentID, Name: name}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.getTeam(ctx, teamID)
}

func (s *teamService) DeleteBatch(ctx context.Context, userID, tournamentID int, teamIDs []int) (int, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return 0, err
	}
	deleted, err := s.teamRepo.DeleteBatch(ctx, tournamentID, teamIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete teams: %w", err)
	}
	return deleted, nil
}

func (s *teamService) List(ctx context.Context, tournamentID int) ([]*models.Team, error) {
	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for _, team := range teams {
		s.populateCrestURL(team)
	}
	return teams, nil
}

func (s *teamService) SetStadium(ctx context.Context, userID, tournamentID, teamID int, input StadiumInput) (*models.Stadium, error) {
	team, err := s.requireTeam(ctx, userID, tournamentID, teamID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	stadium := &models.Stadium{
		TeamID:   team.ID,
		Name:     name,
		Capacity: input.Capacity,
		Address:  input.Address,
	}
	if err := s.stadiumRepo.Upsert(ctx, stadium); err != nil {
		return nil, fmt.Errorf("failed to save stadium: %w", err)
	}
	return stadium, nil
}

func (s *teamService) RemoveStadium(ctx context.Context, userID, tournamentID, teamID int) error {
	if _, err := s.requireTeam(ctx, userID, tournamentID, teamID); err != nil {
		return err
	}
	if err := s.stadiumRepo.DeleteByTeamID(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrStadiumNotFound) {
			return ErrStadiumNotFound
		}
		return fmt.Errorf("failed to delete stadium: %w", err)
	}
	return nil
}

func (s *teamService) UploadCrest(ctx context.Context, userID, tournamentID, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	team, err := s.requireTeam(ctx, userID, tournamentID, teamID)
	if err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, errors.New("file storage is not configured")
	}

	key := fmt.Sprintf("teams/%d/crest", teamID)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload crest: %w", err)
	}
	if err := s.teamRepo.UpdateCrestKey(ctx, teamID, &key); err != nil {
		return nil, fmt.Errorf("failed to store crest key: %w", err)
	}
	team.CrestKey = &key
	s.populateCrestURL(team)
	return team, nil
}

// requireTeam verifies ownership of the tournament and that the team belongs
// to it. Stadium and crest changes stay allowed after generation, so this
// checks the owner only.
func (s *teamService) requireTeam(ctx context.Context, userID, tournamentID, teamID int) (*models.Team, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	if tournament.OwnerID != userID {
		return nil, ErrForbiddenOperation
	}

	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.TournamentID != tournamentID {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

func (s *teamService) getTeam(ctx context.Context, teamID int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	s.populateCrestURL(team)
	return team, nil
}

func (s *teamService) populateCrestURL(team *models.Team) {
	if team.CrestKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*team.CrestKey)
		team.CrestURL = &url
	}
}
