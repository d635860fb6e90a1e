// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	eventNotifier service.EventNotifier
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	EventNotifier service.EventNotifier
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		eventNotifier: params.EventNotifier,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new account. The username check runs before the
// email check; when both are taken, username-taken is the reported error.
// The password is hashed exactly once, right before the record is persisted.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	candidate := &entity.User{
		Title:            input.Title,
		Gender:           input.Gender,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Username:         input.Username,
		Email:            input.Email,
		Password:         input.Password,
		Organisation:     input.Organisation,
		Address:          input.Address,
		City:             input.City,
		Country:          input.Country,
		ZipCode:          input.ZipCode,
		FieldOfActivity:  input.FieldOfActivity,
		ResearchInterest: input.ResearchInterest,
		Role:             entity.RoleUser,
		SecurityQuestion: input.SecurityQuestion,
		SecurityAnswer:   input.SecurityAnswer,
	}
	candidate.TrimFields()

	if err := validateRequiredFields(candidate); err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if err := srv.checkUsernameFree(ctx, candidate.Username, ""); err != nil {
		return nil, err
	}
	if err := srv.checkEmailFree(ctx, candidate.Email, ""); err != nil {
		return nil, err
	}

	// Hash exactly when the password field is being set, just before persisting.
	hashed, err := srv.hasher.Hash(candidate.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrHashingFailed, "failed to hash password during registration")
	}
	candidate.Password = hashed

	created, err := srv.userRepo.Insert(ctx, candidate)
	if err != nil {
		return nil, srv.mapStoreError(ctx, err, "failed to insert user during registration")
	}

	token, err := srv.tokenService.Generate(created.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", created.ID))

	return &usecase.AuthOutput{Token: token, User: created.Reduce()}, nil
}

// AuthenticateUser verifies a username/password pair. Existence is checked
// first; the credential comparison is skipped entirely when the user does
// not exist, with no timing equalization.
func (srv *accountService) AuthenticateUser(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrBadCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token after login")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user.Reduce()}, nil
}

// AuthenticateByToken resolves the account whose identifier is signed into the token.
func (srv *accountService) AuthenticateByToken(ctx context.Context, token string) (*entity.User, error) {
	subject, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed")
	}

	user, err := srv.userRepo.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject does not resolve")
		}

		return nil, errors.Wrap(err, "failed to find user by token subject")
	}

	return user.Reduce(), nil
}

// ValidateToken checks token validity without touching the store.
func (srv *accountService) ValidateToken(token string) error {
	if _, err := srv.tokenService.Verify(token); err != nil {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed")
	}

	return nil
}

// GetUserByID returns the reduced projection of a single account.
func (srv *accountService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.Reduce(), nil
}

// GetResearchInterests returns the research interest tags of a single account.
func (srv *accountService) GetResearchInterests(ctx context.Context, id string) ([]string, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.ResearchInterest, nil
}

// ListUsers returns every account, reduced. The result is unbounded; this
// is acceptable at the scale the system targets.
func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return reduceAll(users), nil
}

// SearchUsers matches a whitespace-tokenized, case-insensitive alternation
// of the search term against the given attributes. A blank term degenerates
// to a match-everything pattern; the boundary layer short-circuits blank
// terms before calling here.
func (srv *accountService) SearchUsers(ctx context.Context, input *usecase.SearchInput) ([]*entity.User, error) {
	attributes := input.Attributes
	if len(attributes) == 0 {
		attributes = repository.SearchableAttributes
	}

	pattern := strings.Join(strings.Fields(input.SearchTerm), "|")

	users, err := srv.userRepo.Search(ctx, pattern, attributes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return reduceAll(users), nil
}

// CheckEventRole returns the account's role within the given external event.
func (srv *accountService) CheckEventRole(ctx context.Context, userID string, eventID int) (string, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return "", err
	}

	role, ok := user.RoleForEvent(eventID)
	if !ok {
		return "", errors.Wrap(domainerrors.ErrEventNotFound, "no role for event")
	}

	return role, nil
}

// UpdateUser applies a partial update after re-validating uniqueness of a
// changed username or email against other accounts. A password present in
// the patch is re-hashed; an absent password is never touched.
func (srv *accountService) UpdateUser(ctx context.Context, id string, input *usecase.UpdateUserInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Updating user", slog.String("userID", id))

	patch := toPatch(input)

	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		patch.Username = &trimmed
		if err := srv.checkUsernameFree(ctx, trimmed, id); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		trimmed := strings.TrimSpace(*patch.Email)
		patch.Email = &trimmed
		if err := srv.checkEmailFree(ctx, trimmed, id); err != nil {
			return nil, err
		}
	}

	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, errors.Wrap(domainerrors.ErrEmptyPassword, "empty password in update")
		}

		hashed, err := srv.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrHashingFailed, "failed to hash password during update")
		}
		patch.Password = &hashed
	}

	updated, err := srv.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, srv.mapStoreError(ctx, err, "failed to update user")
	}

	token, err := srv.tokenService.Generate(updated.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token after update")
	}

	return &usecase.AuthOutput{Token: token, User: updated.Reduce()}, nil
}

// UpdatePassword re-hashes and persists a new password.
func (srv *accountService) UpdatePassword(ctx context.Context, id, newPassword string) error {
	if newPassword == "" {
		return errors.Wrap(domainerrors.ErrEmptyPassword, "empty password")
	}

	if _, err := srv.findUser(ctx, id); err != nil {
		return err
	}

	hashed, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during password update", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrHashingFailed, "failed to hash new password")
	}

	if _, err := srv.userRepo.Update(ctx, id, &entity.UserPatch{Password: &hashed}); err != nil {
		return srv.mapStoreError(ctx, err, "failed to persist new password")
	}

	srv.log(ctx).Info("Password updated", slog.String("userID", id))

	return nil
}

// DeleteUser authenticates the account, announces the deletion to the event
// service, then removes the record. The event-service call is best-effort.
func (srv *accountService) DeleteUser(ctx context.Context, input *usecase.DeleteUserInput) error {
	authenticated, err := srv.AuthenticateUser(ctx, &usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return err
	}

	if err := srv.eventNotifier.UserLeaving(ctx, authenticated.User.ID, input.Token); err != nil {
		// Deletion proceeds regardless; the event service reconciles later.
		srv.log(ctx).Warn("Event service leave notification failed", slog.String("userID", authenticated.User.ID), slog.Any("error", err))
	}

	deleted, err := srv.userRepo.DeleteByUsername(ctx, authenticated.User.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrDeletionFailed, "user vanished before deletion")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	if deleted.Username != authenticated.User.Username {
		return errors.Wrap(domainerrors.ErrDeletionFailed, "deleted record does not match located user")
	}

	srv.log(ctx).Info("User deleted", slog.String("username", deleted.Username))

	return nil
}

// GetSecurityQuestion returns the account ID and stored security question
// for the given email, for the password reset flow.
func (srv *accountService) GetSecurityQuestion(ctx context.Context, email string) (*usecase.SecurityQuestionOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no user for email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &usecase.SecurityQuestionOutput{
		ID:               user.ID,
		SecurityQuestion: user.SecurityQuestion,
	}, nil
}

// CheckSecurityAnswer compares the submitted answer against the stored one,
// both lowercased and trimmed, and mints a token on success.
func (srv *accountService) CheckSecurityAnswer(ctx context.Context, input *usecase.SecurityAnswerInput) (*usecase.AuthOutput, error) {
	user, err := srv.findUser(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	stored := entity.NormalizeSecurityAnswer(user.SecurityAnswer)
	submitted := entity.NormalizeSecurityAnswer(input.SecurityAnswer)
	if stored == "" || stored != submitted {
		srv.log(ctx).Warn("Wrong security answer", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrWrongSecurityAnswer, "security answer mismatch")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token after security answer check")
	}

	return &usecase.AuthOutput{Token: token, User: user.Reduce()}, nil
}

// IsUsernameAvailable reports whether no account holds the given username.
func (srv *accountService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to probe username")
	}

	return false, nil
}

// IsEmailAvailable reports whether no account holds the given email.
func (srv *accountService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to probe email")
	}

	return false, nil
}

// findUser resolves an account by ID with the not-found sentinel mapped to
// the domain taxonomy. The returned user is the full projection; callers
// reduce before anything leaves this layer.
func (srv *accountService) findUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no user for id")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// checkUsernameFree fails with ErrUsernameTaken when another account (with a
// different ID than selfID) already holds the username.
func (srv *accountService) checkUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check username uniqueness")
	}
	if existing.ID == selfID {
		return nil
	}

	return errors.Wrap(domainerrors.ErrUsernameTaken, "username uniqueness check failed")
}

// checkEmailFree fails with ErrEmailTaken when another account already holds the email.
func (srv *accountService) checkEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if existing.ID == selfID {
		return nil
	}

	return errors.Wrap(domainerrors.ErrEmailTaken, "email uniqueness check failed")
}

// mapStoreError translates unique-index violations surfaced by the store
// into the taken-errors of the domain taxonomy. The store index is the
// authoritative enforcement; this path catches the race the pre-checks leave open.
func (srv *accountService) mapStoreError(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return errors.Wrap(domainerrors.ErrUsernameTaken, message)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrEmailTaken, message)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	default:
		srv.log(ctx).Error("Store operation failed", slog.Any("error", err))

		return errors.Wrap(err, message)
	}
}

func validateRequiredFields(user *entity.User) error {
	switch {
	case user.FirstName == "", user.LastName == "",
		user.Username == "", user.Email == "", user.Password == "",
		user.FieldOfActivity == "", len(user.ResearchInterest) == 0,
		user.SecurityQuestion == "", user.SecurityAnswer == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "missing required field")
	default:
		return nil
	}
}

func reduceAll(users []*entity.User) []*entity.User {
	reduced := make([]*entity.User, 0, len(users))
	for _, user := range users {
		reduced = append(reduced, user.Reduce())
	}

	return reduced
}

func toPatch(input *usecase.UpdateUserInput) *entity.UserPatch {
	if input == nil {
		return &entity.UserPatch{}
	}

	return &entity.UserPatch{
		Title:            input.Title,
		Gender:           input.Gender,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Username:         input.Username,
		Email:            input.Email,
		Password:         input.Password,
		Organisation:     input.Organisation,
		Address:          input.Address,
		City:             input.City,
		Country:          input.Country,
		ZipCode:          input.ZipCode,
		FieldOfActivity:  input.FieldOfActivity,
		ResearchInterest: input.ResearchInterest,
		SecurityQuestion: input.SecurityQuestion,
		SecurityAnswer:   input.SecurityAnswer,
		EventRoles:       input.EventRoles,
	}
}
