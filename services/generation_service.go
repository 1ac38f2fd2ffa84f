package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bhorvath/fixturegen/brackets"
	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

// Broadcaster pushes tournament events to websocket subscribers.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message brackets.Message)
}

type GenerationService interface {
	// Generate replaces the tournament's matches with a freshly generated
	// set according to its format and flips the status to generated. The
	// delete, the inserts and the status change run in one transaction.
	Generate(ctx context.Context, userID, tournamentID int, input GenerateInput) ([]*models.Match, error)
}

type GenerateInput struct {
	// Seed pins the team shuffle for reproducible draws. Zero value means
	// seed from the clock.
	Seed *int64 `json:"seed"`
}

type generationService struct {
	db             *sql.DB
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	refereeRepo    repositories.RefereeRepository
	venueRepo      repositories.VenueRepository
	scheduleRepo   repositories.ScheduleRepository
	matchRepo      repositories.MatchRepository
	hub            Broadcaster
}

func NewGenerationService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	refereeRepo repositories.RefereeRepository,
	venueRepo repositories.VenueRepository,
	scheduleRepo repositories.ScheduleRepository,
	matchRepo repositories.MatchRepository,
	hub Broadcaster,
) GenerationService {
	return &generationService{
		db:             db,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		refereeRepo:    refereeRepo,
		venueRepo:      venueRepo,
		scheduleRepo:   scheduleRepo,
		matchRepo:      matchRepo,
		hub:            hub,
	}
}

// generationContext gathers everything a format strategy needs.
type generationContext struct {
	tournament *models.Tournament
	teams      []*models.Team
	referees   []*models.Referee
	venues     []*models.Venue
	slots      []brackets.ScheduleSlot
	rng        *rand.Rand
}

func (s *generationService) Generate(ctx context.Context, userID, tournamentID int, input GenerateInput) ([]*models.Match, error) {
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
	if tournament.StartDate == nil {
		return nil, ErrStartDateRequired
	}

	gen, err := s.loadGenerationContext(ctx, tournament, input.Seed)
	if err != nil {
		return nil, err
	}

	matches, err := s.buildMatches(gen)
	if err != nil {
		return nil, err
	}

	err = withTransaction(ctx, s.db, func(tx *sql.Tx) error {
		if _, delErr := s.matchRepo.DeleteByTournament(ctx, tx, tournamentID); delErr != nil {
			return fmt.Errorf("failed to delete existing matches: %w", delErr)
		}
		if insErr := s.matchRepo.CreateBatch(ctx, tx, matches); insErr != nil {
			return fmt.Errorf("failed to insert matches: %w", insErr)
		}
		if stErr := s.tournamentRepo.UpdateStatus(ctx, tx, tournamentID, models.StatusGenerated); stErr != nil {
			return fmt.Errorf("failed to update tournament status: %w", stErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(strconv.Itoa(tournamentID), brackets.Message{
			Type:    brackets.EventMatchesGenerated,
			Payload: map[string]int{"tournament_id": tournamentID, "count": len(matches)},
		})
	}
	return matches, nil
}

func (s *generationService) loadGenerationContext(ctx context.Context, tournament *models.Tournament, seed *int64) (*generationContext, error) {
	gen := &generationContext{tournament: tournament}
	id := tournament.ID

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.teamRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load teams: %w", err)
		}
		gen.teams = teams
		return nil
	})
	g.Go(func() error {
		referees, err := s.refereeRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load referees: %w", err)
		}
		gen.referees = referees
		return nil
	})
	g.Go(func() error {
		venues, err := s.venueRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load venues: %w", err)
		}
		gen.venues = venues
		return nil
	})
	g.Go(func() error {
		windows, err := s.scheduleRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		slots, slotErr := brackets.BuildScheduleSlots(windows)
		if slotErr != nil {
			return fmt.Errorf("%w: %v", ErrScheduleRequired, slotErr)
		}
		gen.slots = slots
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(gen.teams) < 2 {
		return nil, ErrNotEnoughTeams
	}
	// Every format needs officials; only elimination brackets need venues.
	if len(gen.referees) == 0 {
		return nil, ErrNoRefereesConfigured
	}
	if !brackets.HasAnyTime(gen.slots) {
		return nil, ErrScheduleRequired
	}

	seedValue := time.Now().UnixNano()
	if seed != nil {
		seedValue = *seed
	}
	gen.rng = rand.New(rand.NewSource(seedValue))
	return gen, nil
}

func (s *generationService) buildMatches(gen *generationContext) ([]*models.Match, error) {
	switch gen.tournament.Format {
	case models.FormatLeague, models.FormatRoundRobin:
		return s.buildRoundRobin(gen)
	case models.FormatKnockout:
		return s.buildKnockout(gen)
	case models.FormatDouble:
		return s.buildDouble(gen)
	default:
		return nil, ErrInvalidFormat
	}
}

// buildRoundRobin places berger rounds on the calendar. Home fixtures play at
// the home team's stadium when one is registered; the week advances when a
// round's fixtures are placed, so consecutive rounds never share a week even
// when the schedule has room left.
func (s *generationService) buildRoundRobin(gen *generationContext) ([]*models.Match, error) {
	teams := brackets.Shuffle(gen.rng, gen.teams)
	rounds := brackets.GenerateBergerRounds(gen.rng, teams, gen.tournament.Rounds)
	referees := brackets.Shuffle(gen.rng, gen.referees)

	dates, err := brackets.NewRoundSequencer(*gen.tournament.StartDate, gen.slots)
	if err != nil {
		return nil, ErrScheduleRequired
	}

	matches := make([]*models.Match, 0)
	refereeIndex := 0
	for i, round := range rounds {
		for _, pairing := range round {
			date, dateErr := dates.Next()
			if dateErr != nil {
				return nil, ErrScheduleRequired
			}
			match := &models.Match{
				TournamentID: gen.tournament.ID,
				HomeTeamID:   &pairing.Home.ID,
				AwayTeamID:   &pairing.Away.ID,
				Round:        i + 1,
				Status:       models.MatchStatusScheduled,
				MatchDate:    date,
			}
			if pairing.Home.Stadium != nil {
				match.StadiumID = &pairing.Home.Stadium.ID
			}
			match.RefereeID = &referees[refereeIndex%len(referees)].ID
			refereeIndex++
			matches = append(matches, match)
		}
		dates.EndRound()
	}
	return matches, nil
}

func (s *generationService) buildKnockout(gen *generationContext) ([]*models.Match, error) {
	if len(gen.venues) == 0 {
		return nil, ErrNoVenuesConfigured
	}
	dates, err := brackets.NewSimpleSequencer(*gen.tournament.StartDate, gen.slots)
	if err != nil {
		return nil, ErrScheduleRequired
	}

	planned, err := brackets.BuildSingleElimination(brackets.SingleEliminationParams{
		Teams:          brackets.Shuffle(gen.rng, gen.teams),
		Venues:         brackets.Shuffle(gen.rng, gen.venues),
		Referees:       brackets.Shuffle(gen.rng, gen.referees),
		Dates:          dates,
		WithThirdPlace: gen.tournament.HasThirdPlaceMatch,
	})
	if err != nil {
		if errors.Is(err, brackets.ErrNotEnoughTeams) {
			return nil, ErrNotEnoughTeams
		}
		return nil, err
	}
	return s.plannedToMatches(gen.tournament.ID, planned), nil
}

func (s *generationService) buildDouble(gen *generationContext) ([]*models.Match, error) {
	if len(gen.venues) == 0 {
		return nil, ErrNoVenuesConfigured
	}
	dates, err := brackets.NewSimpleSequencer(*gen.tournament.StartDate, gen.slots)
	if err != nil {
		return nil, ErrScheduleRequired
	}

	planned, err := brackets.BuildDoubleElimination(brackets.DoubleEliminationParams{
		Teams:    brackets.Shuffle(gen.rng, gen.teams),
		Venues:   brackets.Shuffle(gen.rng, gen.venues),
		Referees: brackets.Shuffle(gen.rng, gen.referees),
		Dates:    dates,
	})
	if err != nil {
		return nil, err
	}
	return s.plannedToMatches(gen.tournament.ID, planned), nil
}

// plannedToMatches converts builder output to rows. Prerequisite links are
// wired as pointers into the prerequisite row's ID field: builders emit
// prerequisites before dependents and CreateBatch fills IDs in insert order,
// so the pointer holds the real row id by the time the dependent is inserted.
func (s *generationService) plannedToMatches(tournamentID int, planned []*brackets.PlannedMatch) []*models.Match {
	byPlan := make(map[*brackets.PlannedMatch]*models.Match, len(planned))
	matches := make([]*models.Match, 0, len(planned))

	for _, p := range planned {
		bracket := p.Bracket
		match := &models.Match{
			TournamentID: tournamentID,
			Round:        p.Round,
			BracketType:  &bracket,
			Status:       models.MatchStatusScheduled,
			RefereeID:    p.RefereeID,
			VenueID:      p.VenueID,
			MatchDate:    p.Date,
		}
		if p.HomeTeam != nil {
			match.HomeTeamID = &p.HomeTeam.ID
		}
		if p.AwayTeam != nil {
			match.AwayTeamID = &p.AwayTeam.ID
		}
		if p.Prev1 != nil {
			match.PreviousMatch1ID = &byPlan[p.Prev1].ID
		}
		if p.Prev2 != nil {
			match.PreviousMatch2ID = &byPlan[p.Prev2].ID
		}
		byPlan[p] = match
		matches = append(matches, match)
	}
	return matches
}
