// Package model contains the persistence representations of domain entities.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"accounts/internal/domain/entity"
)

// EventRoleModel mirrors one entry of the embedded eventbasedRole array.
type EventRoleModel struct {
	Event int    `bson:"event"` // the id of the external event
	Role  string `bson:"role"`
}

// UserModel mirrors the 'users' collection. The store assigns the ObjectID.
type UserModel struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title,omitempty"`
	Gender           string             `bson:"gender,omitempty"`
	FirstName        string             `bson:"firstname"`
	LastName         string             `bson:"lastname"`
	Username         string             `bson:"username"`
	Email            string             `bson:"email"`
	Password         string             `bson:"password"` // always a hash, never plaintext
	Organisation     string             `bson:"organisation,omitempty"`
	Address          string             `bson:"address,omitempty"`
	City             string             `bson:"city,omitempty"`
	Country          string             `bson:"country,omitempty"`
	ZipCode          int                `bson:"zipCode,omitempty"`
	FieldOfActivity  string             `bson:"fieldOfActivity"`
	ResearchInterest []string           `bson:"researchInterest"`
	Role             string             `bson:"role"`
	SecurityQuestion string             `bson:"securityQuestion"`
	SecurityAnswer   string             `bson:"securityAnswer"`
	EventRoles       []EventRoleModel   `bson:"eventbasedRole"`
}

// CollectionName is the Mongo collection users are stored in.
func (UserModel) CollectionName() string {
	return "users"
}

// FromUserDomain maps a pure domain entity to its persistence model.
// An empty or invalid domain ID maps to the zero ObjectID so the store
// assigns one on insert.
func FromUserDomain(user *entity.User) *UserModel {
	m := &UserModel{
		Title:            user.Title,
		Gender:           user.Gender,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Username:         user.Username,
		Email:            user.Email,
		Password:         user.Password,
		Organisation:     user.Organisation,
		Address:          user.Address,
		City:             user.City,
		Country:          user.Country,
		ZipCode:          user.ZipCode,
		FieldOfActivity:  user.FieldOfActivity,
		ResearchInterest: user.ResearchInterest,
		Role:             user.Role.String(),
		SecurityQuestion: user.SecurityQuestion,
		SecurityAnswer:   user.SecurityAnswer,
	}

	if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
		m.ID = oid
	}

	for _, er := range user.EventRoles {
		m.EventRoles = append(m.EventRoles, EventRoleModel(er))
	}

	return m
}

// ToUserDomain maps the persistence model back to a pure domain entity.
func (m *UserModel) ToUserDomain() *entity.User {
	user := &entity.User{
		ID:               m.ID.Hex(),
		Title:            m.Title,
		Gender:           m.Gender,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Username:         m.Username,
		Email:            m.Email,
		Password:         m.Password,
		Organisation:     m.Organisation,
		Address:          m.Address,
		City:             m.City,
		Country:          m.Country,
		ZipCode:          m.ZipCode,
		FieldOfActivity:  m.FieldOfActivity,
		ResearchInterest: m.ResearchInterest,
		Role:             entity.Role(m.Role),
		SecurityQuestion: m.SecurityQuestion,
		SecurityAnswer:   m.SecurityAnswer,
	}

	for _, er := range m.EventRoles {
		user.EventRoles = append(user.EventRoles, entity.EventRole(er))
	}

	return user
}
