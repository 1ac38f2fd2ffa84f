package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{Name: "", Email: "a@b.c", Password: "password1"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Ada", Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	var created *models.User
	repo := &fakeUserRepo{createFn: func(ctx context.Context, user *models.User) error {
		created = user
		user.ID = 5
		return nil
	}}
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Ada  ",
		Email:    " Ada@Example.COM ",
		Password: "password1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, 5, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
}

func TestRegisterEmailConflict(t *testing.T) {
	repo := &fakeUserRepo{createFn: func(ctx context.Context, user *models.User) error {
		return repositories.ErrUserEmailConflict
	}}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ada", Email: "a@b.c", Password: "password1"})
	assert.ErrorIs(t, err, ErrUserEmailConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
	}}
	svc := NewAuthService(repo)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@b.c", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTeamEditLockedAfterGeneration(t *testing.T) {
	tournamentRepo := &fakeTournamentRepo{tournament: &models.Tournament{
		ID:      10,
		OwnerID: 1,
		Status:  models.StatusGenerated,
	}}
	svc := NewTeamService(&fakeTeamRepo{}, nil, tournamentRepo, nil)

	_, err := svc.Create(context.Background(), 1, 10, TeamInput{Name: "North"})
	assert.ErrorIs(t, err, ErrTournamentLocked)
}

func TestTeamEditForbiddenForNonOwner(t *testing.T) {
	tournamentRepo := &fakeTournamentRepo{tournament: &models.Tournament{
		ID:      10,
		OwnerID: 1,
		Status:  models.StatusOnHold,
	}}
	svc := NewTeamService(&fakeTeamRepo{}, nil, tournamentRepo, nil)

	_, err := svc.Create(context.Background(), 2, 10, TeamInput{Name: "North"})
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}
