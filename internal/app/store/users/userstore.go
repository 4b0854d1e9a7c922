package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/normalize"
	"github.com/dalemusser/coophub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = apperr.Duplicate("User already exists with this email")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = apperr.BadRequest("Invalid credentials")
	errBadMembership      = apperr.Validation("Invalid membership type",
		apperr.FieldError{Field: "membershipType", Message: "membershipType must be one of: regular premium"})

	errPasswordTooLong = apperr.Validation("Validation failed",
		apperr.FieldError{Field: "password", Message: "password must be at most 72 bytes"})
)

// BcryptCost is the hashing cost for new passwords. Tests lower it.
var BcryptCost = bcrypt.DefaultCost

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// NewUser is the input to Create. Password is plain text.
type NewUser struct {
	BusinessName   string
	Email          string
	Phone          string
	Password       string
	MembershipType string
}

// Create hashes the password and inserts the user. The email is normalized
// before the unique index sees it.
func (s *Store) Create(ctx context.Context, in NewUser) (models.User, error) {
	mt := in.MembershipType
	if mt == "" {
		mt = models.MembershipRegular
	}
	if mt != models.MembershipRegular && mt != models.MembershipPremium {
		return models.User{}, errBadMembership
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, errPasswordTooLong
	}
	if err != nil {
		return models.User{}, apperr.Store("Could not register user", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:             primitive.NewObjectID(),
		BusinessName:   normalize.Name(in.BusinessName),
		Email:          normalize.Email(in.Email),
		Phone:          in.Phone,
		PasswordHash:   string(hash),
		MembershipType: mt,
		JoinedDate:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by normalized email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether email is registered.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"email": normalize.Email(email)}, options.Count().SetLimit(1))
	return n > 0, err
}

// Authenticate checks email and password and, on success, stamps
// last_login and returns the updated user. Unknown email and wrong password
// give the same ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if _, err := s.c.UpdateByID(ctx, u.ID, bson.M{"$set": bson.M{"last_login": now}}); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}

// ProfileUpdate holds the self-editable profile fields; nil means keep.
type ProfileUpdate struct {
	BusinessName *string
	Phone        *string
}

// UpdateProfile applies upd and returns the stored user.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.BusinessName != nil {
		set["business_name"] = normalize.Name(*upd.BusinessName)
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
