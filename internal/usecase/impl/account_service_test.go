package impl

import (
	"context"
	"testing"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateUser_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := newCreateUserInput()

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$freshhash", nil)
	fx.userRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			require.Equal(t, "$2a$10$freshhash", user.Password)
			stored := *user
			stored.ID = testUserID

			return &stored, nil
		})
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)

	output, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, testToken, output.Token)
	assert.Equal(t, testUserID, output.User.ID)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Empty(t, output.User.Password)
	assert.Empty(t, output.User.SecurityQuestion)
	assert.Empty(t, output.User.SecurityAnswer)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestAccountService_CreateUser_TrimsWhitespace(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := newCreateUserInput()
	input.Username = "  ada  "
	input.Email = " ada@example.com "

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$freshhash", nil)
	fx.userRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			require.Equal(t, "ada", user.Username)
			require.Equal(t, "ada@example.com", user.Email)
			stored := *user
			stored.ID = testUserID

			return &stored, nil
		})
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)

	_, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_AuthenticateUser_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(stored, nil)
	fx.hasher.EXPECT().Check("plaintext-password", stored.Password).Return(true)
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)

	output, err := fx.service.AuthenticateUser(ctx, &usecase.LoginInput{
		Username: "ada",
		Password: "plaintext-password",
	})

	require.NoError(t, err)
	assert.Equal(t, testToken, output.Token)
	assert.Empty(t, output.User.Password)
	assert.Empty(t, output.User.SecurityAnswer)
}

func TestAccountService_AuthenticateByToken_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify(testToken).Return(testUserID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(newStoredUser(), nil)

	user, err := fx.service.AuthenticateByToken(ctx, testToken)

	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
	assert.Empty(t, user.Password)
}

func TestAccountService_ValidateToken_Success(t *testing.T) {
	fx := createTestAccountService(t)

	fx.tokenService.EXPECT().Verify(testToken).Return(testUserID, nil)

	require.NoError(t, fx.service.ValidateToken(testToken))
}

func TestAccountService_ListUsers_ReturnsReducedUsers(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{newStoredUser()}, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
	assert.Empty(t, users[0].SecurityQuestion)
	assert.Empty(t, users[0].SecurityAnswer)
}

func TestAccountService_SearchUsers_BuildsAlternationPattern(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Search(ctx, "alice|bob", repository.SearchableAttributes).
		Return([]*entity.User{newStoredUser()}, nil)

	users, err := fx.service.SearchUsers(ctx, &usecase.SearchInput{SearchTerm: "  alice   bob "})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
}

func TestAccountService_SearchUsers_CustomAttributes(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Search(ctx, "ada", []string{"username"}).
		Return(nil, nil)

	users, err := fx.service.SearchUsers(ctx, &usecase.SearchInput{
		SearchTerm: "ada",
		Attributes: []string{"username"},
	})

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAccountService_CheckEventRole_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(newStoredUser(), nil)

	role, err := fx.service.CheckEventRole(ctx, testUserID, 7)

	require.NoError(t, err)
	assert.Equal(t, "host", role)
}

func TestAccountService_UpdateUser_RehashesPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	newPassword := "new-password"
	input := &usecase.UpdateUserInput{Password: &newPassword}

	fx.hasher.EXPECT().Hash(newPassword).Return("$2a$10$rehash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, testUserID, mock.AnythingOfType("*entity.UserPatch")).
		RunAndReturn(func(_ context.Context, _ string, patch *entity.UserPatch) (*entity.User, error) {
			require.NotNil(t, patch.Password)
			require.Equal(t, "$2a$10$rehash", *patch.Password)

			return newStoredUser(), nil
		})
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)

	output, err := fx.service.UpdateUser(ctx, testUserID, input)

	require.NoError(t, err)
	assert.Equal(t, testToken, output.Token)
	assert.Empty(t, output.User.Password)
}

func TestAccountService_UpdateUser_SameUsernameIsNotAConflict(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	username := "ada"
	input := &usecase.UpdateUserInput{Username: &username}

	// The only account holding the username is the one being updated.
	fx.userRepo.EXPECT().FindByUsername(ctx, username).Return(newStoredUser(), nil)
	fx.userRepo.EXPECT().
		Update(ctx, testUserID, mock.AnythingOfType("*entity.UserPatch")).
		Return(newStoredUser(), nil)
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)

	_, err := fx.service.UpdateUser(ctx, testUserID, input)

	require.NoError(t, err)
}

func TestAccountService_UpdatePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(newStoredUser(), nil)
	fx.hasher.EXPECT().Hash("new-password").Return("$2a$10$rehash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, testUserID, mock.AnythingOfType("*entity.UserPatch")).
		RunAndReturn(func(_ context.Context, _ string, patch *entity.UserPatch) (*entity.User, error) {
			require.NotNil(t, patch.Password)
			require.Equal(t, "$2a$10$rehash", *patch.Password)

			return newStoredUser(), nil
		})

	require.NoError(t, fx.service.UpdatePassword(ctx, testUserID, "new-password"))
}

func TestAccountService_DeleteUser_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(stored, nil)
	fx.hasher.EXPECT().Check("plaintext-password", stored.Password).Return(true)
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)
	fx.eventNotifier.EXPECT().UserLeaving(ctx, testUserID, "caller-token").Return(nil)
	fx.userRepo.EXPECT().DeleteByUsername(ctx, "ada").Return(stored, nil)

	err := fx.service.DeleteUser(ctx, &usecase.DeleteUserInput{
		Username: "ada",
		Password: "plaintext-password",
		Token:    "caller-token",
	})

	require.NoError(t, err)
}

func TestAccountService_DeleteUser_EventServiceFailureIsNotFatal(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(stored, nil)
	fx.hasher.EXPECT().Check("plaintext-password", stored.Password).Return(true)
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)
	fx.eventNotifier.EXPECT().
		UserLeaving(ctx, testUserID, "caller-token").
		Return(assert.AnError)
	fx.userRepo.EXPECT().DeleteByUsername(ctx, "ada").Return(stored, nil)

	err := fx.service.DeleteUser(ctx, &usecase.DeleteUserInput{
		Username: "ada",
		Password: "plaintext-password",
		Token:    "caller-token",
	})

	require.NoError(t, err)
}

func TestAccountService_GetSecurityQuestion_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(stored, nil)

	output, err := fx.service.GetSecurityQuestion(ctx, "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, testUserID, output.ID)
	assert.Equal(t, stored.SecurityQuestion, output.SecurityQuestion)
}

func TestAccountService_CheckSecurityAnswer_CaseAndWhitespaceInsensitive(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(newStoredUser(), nil)
	fx.tokenService.EXPECT().Generate(testUserID).Return(testToken, nil)

	output, err := fx.service.CheckSecurityAnswer(ctx, &usecase.SecurityAnswerInput{
		ID:             testUserID,
		SecurityAnswer: "  cHaRlEs ",
	})

	require.NoError(t, err)
	assert.Equal(t, testToken, output.Token)
	assert.Empty(t, output.User.SecurityAnswer)
}

func TestAccountService_IsUsernameAvailable(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "free").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, "ada").Return(newStoredUser(), nil)

	free, err := fx.service.IsUsernameAvailable(ctx, "free")
	require.NoError(t, err)
	assert.True(t, free)

	taken, err := fx.service.IsUsernameAvailable(ctx, "ada")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAccountService_IsEmailAvailable(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "free@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(newStoredUser(), nil)

	free, err := fx.service.IsEmailAvailable(ctx, "free@example.com")
	require.NoError(t, err)
	assert.True(t, free)

	taken, err := fx.service.IsEmailAvailable(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}
