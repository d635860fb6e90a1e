// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new account.
type CreateUserInput struct {
	Title            string   `json:"title"`
	Gender           string   `json:"gender"`
	FirstName        string   `json:"firstname" validate:"required"`
	LastName         string   `json:"lastname" validate:"required"`
	Username         string   `json:"username" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required"`
	Organisation     string   `json:"organisation"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	ZipCode          int      `json:"zipCode"`
	FieldOfActivity  string   `json:"fieldOfActivity" validate:"required"`
	ResearchInterest []string `json:"researchInterest" validate:"required"`
	SecurityQuestion string   `json:"securityQuestion" validate:"required"`
	SecurityAnswer   string   `json:"securityAnswer" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput carries a partial profile update. Absent fields are left
// untouched; present fields overwrite.
type UpdateUserInput struct {
	Title            *string             `json:"title"`
	Gender           *string             `json:"gender"`
	FirstName        *string             `json:"firstname"`
	LastName         *string             `json:"lastname"`
	Username         *string             `json:"username"`
	Email            *string             `json:"email"`
	Password         *string             `json:"password"`
	Organisation     *string             `json:"organisation"`
	Address          *string             `json:"address"`
	City             *string             `json:"city"`
	Country          *string             `json:"country"`
	ZipCode          *int                `json:"zipCode"`
	FieldOfActivity  *string             `json:"fieldOfActivity"`
	ResearchInterest *[]string           `json:"researchInterest"`
	SecurityQuestion *string             `json:"securityQuestion"`
	SecurityAnswer   *string             `json:"securityAnswer"`
	EventRoles       *[]entity.EventRole `json:"eventbasedRole"`
}

// SearchInput defines a free-text user search. An empty attribute list
// falls back to the default searchable set.
type SearchInput struct {
	SearchTerm string   `json:"searchTerm"`
	Attributes []string `json:"attributes"`
}

// DeleteUserInput authenticates the account to delete.
type DeleteUserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Token    string `json:"-"`
}

// SecurityAnswerInput defines a security-answer check for the reset flow.
type SecurityAnswerInput struct {
	ID             string `json:"id" validate:"required"`
	SecurityAnswer string `json:"securityAnswer" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns a freshly signed token together with the reduced user.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// SecurityQuestionOutput identifies the account and its stored security question.
type SecurityQuestionOutput struct {
	ID               string `json:"id"`
	SecurityQuestion string `json:"securityQuestion"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// All returned users are reduced projections; full projections never leave
// the usecase layer.
type AccountUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*AuthOutput, error)
	AuthenticateUser(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	AuthenticateByToken(ctx context.Context, token string) (*entity.User, error)
	ValidateToken(token string) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetResearchInterests(ctx context.Context, id string) ([]string, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	SearchUsers(ctx context.Context, input *SearchInput) ([]*entity.User, error)
	CheckEventRole(ctx context.Context, userID string, eventID int) (string, error)
	UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*AuthOutput, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
	DeleteUser(ctx context.Context, input *DeleteUserInput) error
	GetSecurityQuestion(ctx context.Context, email string) (*SecurityQuestionOutput, error)
	CheckSecurityAnswer(ctx context.Context, input *SecurityAnswerInput) (*AuthOutput, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
}
