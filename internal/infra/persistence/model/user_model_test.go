package model

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"accounts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFromUserDomain_InvalidIDLeavesZeroObjectID(t *testing.T) {
	m := FromUserDomain(&entity.User{Username: "ada"})
	assert.True(t, m.ID.IsZero())

	m = FromUserDomain(&entity.User{ID: "not-a-hex-id", Username: "ada"})
	assert.True(t, m.ID.IsZero())
}

func TestUserModel_RoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	m := &UserModel{
		ID:               oid,
		Username:         "ada",
		Email:            "ada@example.com",
		Password:         "$2a$10$hash",
		Role:             "user",
		ResearchInterest: []string{"VR"},
		EventRoles:       []EventRoleModel{{Event: 7, Role: "host"}},
	}

	user := m.ToUserDomain()

	assert.Equal(t, oid.Hex(), user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, []entity.EventRole{{Event: 7, Role: "host"}}, user.EventRoles)

	back := FromUserDomain(user)
	assert.Equal(t, oid, back.ID)
	assert.Equal(t, m.EventRoles, back.EventRoles)
}
