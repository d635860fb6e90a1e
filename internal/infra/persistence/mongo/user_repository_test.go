package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchToSetDocument(t *testing.T) {
	username := "ada"
	password := "$2a$10$hash"
	zip := 80333
	interests := []string{"VR", "AR"}
	eventRoles := []entity.EventRole{{Event: 7, Role: "host"}}

	set := patchToSetDocument(&entity.UserPatch{
		Username:         &username,
		Password:         &password,
		ZipCode:          &zip,
		ResearchInterest: &interests,
		EventRoles:       &eventRoles,
	})

	assert.Equal(t, "ada", set["username"])
	assert.Equal(t, "$2a$10$hash", set["password"])
	assert.Equal(t, 80333, set["zipCode"])
	assert.Equal(t, interests, set["researchInterest"])
	assert.Len(t, set, 5)

	// Absent fields never appear in the document.
	_, hasEmail := set["email"]
	assert.False(t, hasEmail)
}

func TestPatchToSetDocument_Empty(t *testing.T) {
	assert.Empty(t, patchToSetDocument(nil))
	assert.Empty(t, patchToSetDocument(&entity.UserPatch{}))
}

func TestMapDuplicateKeyError(t *testing.T) {
	duplicate := func(message string) error {
		return mongo.WriteException{
			WriteErrors: []mongo.WriteError{{Code: 11000, Message: message}},
		}
	}

	err := mapDuplicateKeyError(duplicate("E11000 duplicate key error collection: account-management.users index: username_1 dup key"))
	assert.True(t, errors.Is(err, repository.ErrDuplicateUsername))

	err = mapDuplicateKeyError(duplicate("E11000 duplicate key error collection: account-management.users index: email_1 dup key"))
	assert.True(t, errors.Is(err, repository.ErrDuplicateEmail))

	// Non-duplicate errors pass through untouched.
	assert.Nil(t, mapDuplicateKeyError(errors.New("connection reset")))
}

func TestSearchableFields_CoverDefaultAttributes(t *testing.T) {
	for _, attribute := range repository.SearchableAttributes {
		_, ok := searchableFields[attribute]
		require.True(t, ok, attribute)
	}
}
