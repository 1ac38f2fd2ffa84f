package services

import "errors"

// Errors shared across services and mapped to HTTP statuses in handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules.
	ErrValidationFailed       = errors.New("validation failed")
	ErrPasswordTooShort       = errors.New("password is too short")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTournamentNameTooShort = errors.New("tournament name is too short")
	ErrInvalidFormat          = errors.New("unknown tournament format")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrStartDateRequired      = errors.New("tournament start date is not set")
	ErrScheduleRequired       = errors.New("schedule has no usable time windows")
	ErrNoVenuesConfigured     = errors.New("tournament has no venues")
	ErrNoRefereesConfigured   = errors.New("tournament has no referees")
	ErrNotEnoughTeams         = errors.New("not enough teams to generate matches")
	ErrScoresRequired         = errors.New("both scores are required")
	ErrNegativeScore          = errors.New("scores cannot be negative")
	ErrDrawNotAllowed         = errors.New("draws are not allowed in elimination matches")
	ErrMatchNotReady          = errors.New("match participants are not decided yet")

	// Conflicts.
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Authentication and authorization.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// A generated tournament is read-only until its matches are deleted.
	ErrTournamentLocked = errors.New("tournament already has generated matches")

	// Entity lookups.
	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrRefereeNotFound    = errors.New("referee not found")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrStadiumNotFound    = errors.New("stadium not found")
	ErrMatchNotFound      = errors.New("match not found")
)
