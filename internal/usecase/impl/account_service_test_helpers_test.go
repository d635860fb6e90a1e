package impl

import (
	"io"
	"log/slog"
	"testing"

	"accounts/internal/domain/entity"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service       usecase.AccountUsecase
	userRepo      *mockRepo.MockUserRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	eventNotifier *mockSvc.MockEventNotifier
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	eventNotifier := mockSvc.NewMockEventNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		UserRepo:      userRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		EventNotifier: eventNotifier,
		Logger:        logger,
	})

	return accountServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		eventNotifier: eventNotifier,
	}
}

const (
	testUserID = "64f1c0ffee0000000000abcd"
	testToken  = "signed.jwt.token"
)

func newStoredUser() *entity.User {
	return &entity.User{
		ID:               testUserID,
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Username:         "ada",
		Email:            "ada@example.com",
		Password:         "$2a$10$storedhash",
		FieldOfActivity:  "Research",
		ResearchInterest: []string{"VR"},
		Role:             entity.RoleUser,
		SecurityQuestion: "What is the name of your favorite childhood friend?",
		SecurityAnswer:   "Charles",
		EventRoles: []entity.EventRole{
			{Event: 7, Role: "host"},
		},
	}
}

func newCreateUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Username:         "ada",
		Email:            "ada@example.com",
		Password:         "plaintext-password",
		FieldOfActivity:  "Research",
		ResearchInterest: []string{"VR"},
		SecurityQuestion: "What is the name of your favorite childhood friend?",
		SecurityAnswer:   "Charles",
	}
}
