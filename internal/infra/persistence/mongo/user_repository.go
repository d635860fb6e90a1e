package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/model"
)

// searchableFields whitelists the attributes free-text search may touch and
// maps them to their stored field names.
var searchableFields = map[string]string{
	"firstname":        "firstname",
	"lastname":         "lastname",
	"username":         "username",
	"email":            "email",
	"organisation":     "organisation",
	"city":             "city",
	"country":          "country",
	"fieldOfActivity":  "fieldOfActivity",
	"researchInterest": "researchInterest",
}

// userRepository implements the repository.UserRepository interface on MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// FindByID retrieves a single user by their store-assigned ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID cannot match any stored record.
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username})
}

// FindByEmail retrieves a single user by their unique email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return userM.ToUserDomain(), nil
}

// Insert persists a new user and returns it with the assigned ID.
func (repo *userRepository) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := model.FromUserDomain(user)

	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		if dupErr := mapDuplicateKeyError(err); dupErr != nil {
			return nil, dupErr
		}

		return nil, errors.Wrap(err, "failed to insert user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		userM.ID = oid
	}

	return userM.ToUserDomain(), nil
}

// Update applies a partial patch and returns the updated record.
func (repo *userRepository) Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	set := patchToSetDocument(patch)
	if len(set) == 0 {
		// Nothing to change; behave like a plain lookup.
		return repo.findOne(ctx, bson.M{"_id": oid})
	}

	var updated model.UserModel
	err = repo.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		if dupErr := mapDuplicateKeyError(err); dupErr != nil {
			return nil, dupErr
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return updated.ToUserDomain(), nil
}

// DeleteByUsername removes the user with the given username and returns the deleted record.
func (repo *userRepository) DeleteByUsername(ctx context.Context, username string) (*entity.User, error) {
	var deleted model.UserModel
	err := repo.collection.FindOneAndDelete(ctx, bson.M{"username": username}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}

	return deleted.ToUserDomain(), nil
}

// FindAll returns every stored user. The result is unbounded.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(ctx, bson.M{})
}

// Search returns every user where any of the given attributes matches the
// case-insensitive pattern. Unknown attributes are ignored; a query with no
// usable attribute matches nothing.
func (repo *userRepository) Search(ctx context.Context, pattern string, attributes []string) ([]*entity.User, error) {
	conditions := make(bson.A, 0, len(attributes))
	for _, attribute := range attributes {
		field, ok := searchableFields[attribute]
		if !ok {
			continue
		}
		conditions = append(conditions, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
	}

	if len(conditions) == 0 {
		return nil, nil
	}

	return repo.findMany(ctx, bson.M{"$or": conditions})
}

func (repo *userRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query users")
	}
	defer cursor.Close(ctx)

	var models []model.UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].ToUserDomain())
	}

	return users, nil
}

// mapDuplicateKeyError translates a unique-index violation into the
// field-specific repository sentinel, or returns nil for other errors.
// The indexes are the authoritative uniqueness enforcement; the usecase
// pre-checks only improve error reporting.
func mapDuplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "username"):
		return repository.ErrDuplicateUsername
	case strings.Contains(msg, "email"):
		return repository.ErrDuplicateEmail
	default:
		return errors.Wrap(err, "duplicate key on unexpected index")
	}
}

func patchToSetDocument(patch *entity.UserPatch) bson.M {
	set := bson.M{}
	if patch == nil {
		return set
	}

	setString := func(field string, value *string) {
		if value != nil {
			set[field] = *value
		}
	}

	setString("title", patch.Title)
	setString("gender", patch.Gender)
	setString("firstname", patch.FirstName)
	setString("lastname", patch.LastName)
	setString("username", patch.Username)
	setString("email", patch.Email)
	setString("password", patch.Password)
	setString("organisation", patch.Organisation)
	setString("address", patch.Address)
	setString("city", patch.City)
	setString("country", patch.Country)
	setString("fieldOfActivity", patch.FieldOfActivity)
	setString("securityQuestion", patch.SecurityQuestion)
	setString("securityAnswer", patch.SecurityAnswer)

	if patch.ZipCode != nil {
		set["zipCode"] = *patch.ZipCode
	}
	if patch.ResearchInterest != nil {
		set["researchInterest"] = *patch.ResearchInterest
	}
	if patch.Role != nil {
		set["role"] = patch.Role.String()
	}
	if patch.EventRoles != nil {
		eventRoles := make([]model.EventRoleModel, 0, len(*patch.EventRoles))
		for _, er := range *patch.EventRoles {
			eventRoles = append(eventRoles, model.EventRoleModel(er))
		}
		set["eventbasedRole"] = eventRoles
	}

	return set
}
