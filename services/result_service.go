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

type ResultService interface {
	// SubmitResult records a final score and, for bracket matches, moves
	// the winner and loser into every match wired to this one. The result
	// update and the slot updates run in one transaction.
	SubmitResult(ctx context.Context, userID, matchID int, input ResultInput) (*models.Match, error)
}

type ResultInput struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

type resultService struct {
	db             *sql.DB
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	hub            Broadcaster
}

func NewResultService(db *sql.DB, matchRepo repositories.MatchRepository, tournamentRepo repositories.TournamentRepository, hub Broadcaster) ResultService {
	return &resultService{db: db, matchRepo: matchRepo, tournamentRepo: tournamentRepo, hub: hub}
}

func (s *resultService) SubmitResult(ctx context.Context, userID, matchID int, input ResultInput) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, match.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	if tournament.OwnerID != userID {
		return nil, ErrForbiddenOperation
	}

	winnerID, loserID, err := computeOutcome(match, tournament.Format, input)
	if err != nil {
		return nil, err
	}

	match.HomeScore = input.HomeScore
	match.AwayScore = input.AwayScore
	match.WinnerTeamID = winnerID
	match.Status = models.MatchStatusOver

	err = withTransaction(ctx, s.db, func(tx *sql.Tx) error {
		if updErr := s.matchRepo.UpdateResult(ctx, tx, match); updErr != nil {
			return fmt.Errorf("failed to update match: %w", updErr)
		}
		if match.BracketType == nil {
			return nil
		}

		all, listErr := s.matchRepo.ListByTournament(ctx, match.TournamentID)
		if listErr != nil {
			return fmt.Errorf("failed to load bracket: %w", listErr)
		}
		dependents := brackets.BuildDependentsIndex(all)

		for _, adv := range brackets.PlanAdvancements(match, *winnerID, *loserID, dependents[match.ID]) {
			home := adv.Slot == brackets.SlotHome
			if slotErr := s.matchRepo.UpdateTeamSlot(ctx, tx, adv.Match.ID, home, adv.TeamID); slotErr != nil {
				return fmt.Errorf("failed to advance team into match %d: %w", adv.Match.ID, slotErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(strconv.Itoa(match.TournamentID), brackets.Message{
			Type:    brackets.EventMatchUpdated,
			Payload: match,
		})
	}
	return match, nil
}

// computeOutcome validates a submitted score against the match state and
// returns the winner and loser. Both are nil on a league draw; bracket
// matches reject draws outright. A match that is already over may be
// submitted again: the outcome is recomputed and re-applied, so repeating
// the same score leaves every downstream slot unchanged.
func computeOutcome(match *models.Match, format models.TournamentFormat, input ResultInput) (winnerID, loserID *int, err error) {
	if match.HomeTeamID == nil || match.AwayTeamID == nil {
		return nil, nil, ErrMatchNotReady
	}
	if input.HomeScore == nil || input.AwayScore == nil {
		return nil, nil, ErrScoresRequired
	}
	if *input.HomeScore < 0 || *input.AwayScore < 0 {
		return nil, nil, ErrNegativeScore
	}

	switch {
	case *input.HomeScore > *input.AwayScore:
		return match.HomeTeamID, match.AwayTeamID, nil
	case *input.HomeScore < *input.AwayScore:
		return match.AwayTeamID, match.HomeTeamID, nil
	default:
		if match.BracketType != nil || format.IsElimination() {
			return nil, nil, ErrDrawNotAllowed
		}
		return nil, nil, nil
	}
}
