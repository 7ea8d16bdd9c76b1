package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/security"
	userdto "github.com/campuskart/campus-market-service/internal/usecase/dto/user"
)

type fakeUserRepo struct {
	usersByID    map[string]*domain.User
	usersByEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:    make(map[string]*domain.User),
		usersByEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *domain.User) error {
	if _, ok := r.usersByEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	copied := *user
	r.usersByID[user.ID] = &copied
	r.usersByEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, ok := r.usersByID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *domain.User) error {
	stored, ok := r.usersByID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	*stored = *user
	return nil
}

func newTestUserUsecase(repo *fakeUserRepo) *DefaultUserUsecase {
	return NewDefaultUserUsecase(repo, security.NewTokenManager("test-secret"), "iiit.ac.in")
}

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	validInput := func() *userdto.RegisterInput {
		return &userdto.RegisterInput{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@iiit.ac.in",
			Age:       21,
			Password:  "secret",
		}
	}

	t.Run("registers institutional email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newTestUserUsecase(repo)

		user, err := uc.Register(ctx, validInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.ID == "" {
			t.Fatalf("expected generated user id")
		}
		if user.PasswordHash == "secret" {
			t.Fatalf("password must be stored hashed")
		}
		if !security.ComparePassword(user.PasswordHash, "secret") {
			t.Fatalf("stored hash must match the password")
		}
	})

	t.Run("rejects outside email domain", func(t *testing.T) {
		uc := newTestUserUsecase(newFakeUserRepo())

		input := validInput()
		input.Email = "asha@gmail.com"
		if _, err := uc.Register(ctx, input); !errors.Is(err, domain.ErrInvalidEmailDomain) {
			t.Fatalf("expected ErrInvalidEmailDomain, got %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newTestUserUsecase(repo)

		if _, err := uc.Register(ctx, validInput()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := uc.Register(ctx, validInput()); !errors.Is(err, domain.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc := newTestUserUsecase(newFakeUserRepo())

		input := validInput()
		input.Password = ""
		if _, err := uc.Register(ctx, input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestUserLogin(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	uc := newTestUserUsecase(repo)

	if _, err := uc.Register(ctx, &userdto.RegisterInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@iiit.ac.in",
		Password:  "secret",
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, err := uc.Login(ctx, &userdto.LoginInput{Email: "asha@iiit.ac.in", Password: "secret"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token == "" {
			t.Fatalf("expected a token")
		}

		userID, err := uc.Tokens.Parse(token)
		if err != nil {
			t.Fatalf("expected parsable token, got %v", err)
		}
		if _, err := repo.GetUserByID(ctx, userID); err != nil {
			t.Fatalf("token subject must resolve to the user, got %v", err)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if _, err := uc.Login(ctx, &userdto.LoginInput{Email: "asha@iiit.ac.in", Password: "nope"}); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email collapses to invalid credentials", func(t *testing.T) {
		if _, err := uc.Login(ctx, &userdto.LoginInput{Email: "ghost@iiit.ac.in", Password: "secret"}); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	uc := newTestUserUsecase(repo)

	user, err := uc.Register(ctx, &userdto.RegisterInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@iiit.ac.in",
		Password:  "secret",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	updated, err := uc.UpdateProfile(ctx, &userdto.UpdateProfileInput{
		UserID:        user.ID,
		ContactNumber: "9999999999",
		Password:      "newsecret",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.FirstName != "Asha" {
		t.Fatalf("untouched fields must keep their values")
	}
	if updated.ContactNumber != "9999999999" {
		t.Fatalf("expected contact number updated")
	}
	if !security.ComparePassword(updated.PasswordHash, "newsecret") {
		t.Fatalf("expected password re-hashed")
	}
}
