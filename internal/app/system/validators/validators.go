// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and attaches JSON-Schema
// validators. Servers that reject collMod validators (some DocumentDB
// versions) are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		existing = nil
	}

	var problems []string
	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll, existing, log); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				log.Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
			return
		}
		log.Info("validator ensured", zap.String("collection", coll))
	}

	ensure("about", nil)
	ensure("users", usersSchema())
	ensure("businesses", businessesSchema())
	ensure("business_details", businessDetailsSchema())
	ensure("notices", noticesSchema())
	for _, c := range []string{"saving_schemes", "loan_schemes", "additional_facilities", "team_members"} {
		ensure(c, catalogSchema())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, existing []string, log *zap.Logger) error {
	if slices.Contains(existing, name) {
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExists(err) {
			return nil
		}
		log.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	log.Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

/* ------------------------- error helpers ------------------------- */

func commandErr(err error) (mongo.CommandError, bool) {
	var ce mongo.CommandError
	ok := errors.As(err, &ce)
	return ce, ok
}

func isNamespaceExists(err error) bool {
	if ce, ok := commandErr(err); ok && ce.Code == 48 {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

// isUnsupported matches "no such command" (59) and "not implemented" (115).
func isUnsupported(err error) bool {
	if ce, ok := commandErr(err); ok && (ce.Code == 59 || ce.Code == 115) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") ||
		strings.Contains(s, "not implemented") ||
		strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func enum(vals ...string) bson.M {
	a := make(bson.A, len(vals))
	for i, v := range vals {
		a[i] = v
	}
	return bson.M{"enum": a}
}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"email", "password_hash", "membership_type"},
			"properties": bson.M{
				"email":           nonBlank,
				"password_hash":   nonBlank,
				"business_name":   bson.M{"bsonType": "string"},
				"membership_type": enum(models.MembershipRegular, models.MembershipPremium),
			},
		},
	}
}

func businessesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "slug", "category", "status"},
			"properties": bson.M{
				"name":     nonBlank,
				"slug":     bson.M{"bsonType": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
				"category": enum(models.BusinessCategories...),
				"status":   enum(models.ListingActive, models.ListingInactive, models.ListingPending),
				"services": bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
			},
		},
	}
}

func businessDetailsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "name_ci", "owner_id", "status"},
			"properties": bson.M{
				"name":     nonBlank,
				"name_ci":  nonBlank,
				"owner_id": bson.M{"bsonType": "objectId"},
				"status":   enum(models.ListingActive, models.ListingInactive, models.ListingPending),
			},
		},
	}
}

func noticesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "type", "status"},
			"properties": bson.M{
				"title":     bson.M{"bsonType": "string", "minLength": 1, "maxLength": 200},
				"type":      enum(models.NoticeAnnouncement, models.NoticeNews, models.NoticeCircular),
				"status":    enum(models.NoticeDraft, models.NoticePublished, models.NoticeArchived),
				"important": bson.M{"bsonType": "bool"},
			},
		},
	}
}

func catalogSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"order", "is_active"},
			"properties": bson.M{
				"order":     bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"is_active": bson.M{"bsonType": "bool"},
			},
		},
	}
}
