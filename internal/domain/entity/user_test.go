package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Reduce_StripsSensitiveFields(t *testing.T) {
	user := &User{
		ID:               "64f1c0ffee0000000000abcd",
		Username:         "ada",
		Email:            "ada@example.com",
		Password:         "$2a$10$hash",
		SecurityQuestion: "Where were you born?",
		SecurityAnswer:   "London",
	}

	reduced := user.Reduce()

	assert.Empty(t, reduced.Password)
	assert.Empty(t, reduced.SecurityQuestion)
	assert.Empty(t, reduced.SecurityAnswer)
	assert.Equal(t, user.ID, reduced.ID)
	assert.Equal(t, user.Username, reduced.Username)

	// The original is left intact.
	assert.Equal(t, "$2a$10$hash", user.Password)
}

func TestUser_Reduce_Idempotent(t *testing.T) {
	user := &User{
		ID:             "64f1c0ffee0000000000abcd",
		Username:       "ada",
		Password:       "$2a$10$hash",
		SecurityAnswer: "London",
	}

	once := user.Reduce()
	twice := once.Reduce()

	assert.Equal(t, once, twice)
}

func TestUser_RoleForEvent(t *testing.T) {
	user := &User{
		EventRoles: []EventRole{
			{Event: 1, Role: "host"},
			{Event: 2, Role: "attendee"},
			{Event: 1, Role: "attendee"},
		},
	}

	role, ok := user.RoleForEvent(2)
	require.True(t, ok)
	assert.Equal(t, "attendee", role)

	// Duplicate entries: the first stored entry wins.
	role, ok = user.RoleForEvent(1)
	require.True(t, ok)
	assert.Equal(t, "host", role)

	_, ok = user.RoleForEvent(99)
	assert.False(t, ok)
}

func TestUser_TrimFields(t *testing.T) {
	user := &User{
		FirstName:      "  Ada ",
		LastName:       "Lovelace  ",
		Username:       " ada ",
		Email:          " ada@example.com ",
		SecurityAnswer: "  London ",
	}

	user.TrimFields()

	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "London", user.SecurityAnswer)
}

func TestNormalizeSecurityAnswer(t *testing.T) {
	assert.Equal(t, "london", NormalizeSecurityAnswer("  LoNdOn "))
	assert.Equal(t, "", NormalizeSecurityAnswer("   "))
}

func TestUserPatch_IsEmpty(t *testing.T) {
	var nilPatch *UserPatch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&UserPatch{}).IsEmpty())

	username := "ada"
	assert.False(t, (&UserPatch{Username: &username}).IsEmpty())
}
