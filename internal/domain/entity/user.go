// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// EventRole records the role a user holds within one external event.
// Entries are matched by exact integer event ID; duplicates are not
// deduplicated, the first matching entry wins.
type EventRole struct {
	Event int    `json:"event"`
	Role  string `json:"role"`
}

// User is the core entity of the system: one registered account.
// The ID is assigned by the store and immutable. Username and email are
// unique across all accounts. Password only ever holds a hash once the
// account has been persisted; the plaintext never survives registration.
type User struct {
	ID               string      `json:"id"`
	Title            string      `json:"title,omitempty"`
	Gender           string      `json:"gender,omitempty"`
	FirstName        string      `json:"firstname"`
	LastName         string      `json:"lastname"`
	Username         string      `json:"username"`
	Email            string      `json:"email"`
	Password         string      `json:"-"`
	Organisation     string      `json:"organisation,omitempty"`
	Address          string      `json:"address,omitempty"`
	City             string      `json:"city,omitempty"`
	Country          string      `json:"country,omitempty"`
	ZipCode          int         `json:"zipCode,omitempty"`
	FieldOfActivity  string      `json:"fieldOfActivity"`
	ResearchInterest []string    `json:"researchInterest"`
	Role             Role        `json:"role"`
	SecurityQuestion string      `json:"-"`
	SecurityAnswer   string      `json:"-"`
	EventRoles       []EventRole `json:"eventbasedRole"`
}

// Reduce returns a projection of the user with all sensitive fields
// stripped. It is a pure projection: reducing an already reduced user
// yields the same value.
func (u *User) Reduce() *User {
	reduced := *u
	reduced.Password = ""
	reduced.SecurityQuestion = ""
	reduced.SecurityAnswer = ""

	return &reduced
}

// TrimFields trims surrounding whitespace on all free-form text fields,
// mirroring the store schema's trim rules.
func (u *User) TrimFields() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.Organisation = strings.TrimSpace(u.Organisation)
	u.Address = strings.TrimSpace(u.Address)
	u.FieldOfActivity = strings.TrimSpace(u.FieldOfActivity)
	u.SecurityAnswer = strings.TrimSpace(u.SecurityAnswer)
}

// RoleForEvent scans the event-based role list for an entry with the given
// event ID. The scan is linear; with duplicate entries the stored order
// decides which one matches.
func (u *User) RoleForEvent(eventID int) (string, bool) {
	for _, entry := range u.EventRoles {
		if entry.Event == eventID {
			return entry.Role, true
		}
	}

	return "", false
}

// NormalizeSecurityAnswer lowercases and trims an answer before comparison.
// This is a deliberate normalization rule, applied to both the stored and
// the submitted answer.
func NormalizeSecurityAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// UserPatch carries a partial update: nil fields are left untouched,
// set fields overwrite. A set Password is re-hashed before it reaches
// the store; an absent Password is never re-hashed.
type UserPatch struct {
	Title            *string
	Gender           *string
	FirstName        *string
	LastName         *string
	Username         *string
	Email            *string
	Password         *string
	Organisation     *string
	Address          *string
	City             *string
	Country          *string
	ZipCode          *int
	FieldOfActivity  *string
	ResearchInterest *[]string
	Role             *Role
	SecurityQuestion *string
	SecurityAnswer   *string
	EventRoles       *[]EventRole
}

// IsEmpty reports whether the patch sets no fields at all.
func (p *UserPatch) IsEmpty() bool {
	return p == nil || *p == (UserPatch{})
}
