// internal/app/system/search/search.go
package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contains returns a case-insensitive regex matching q anywhere in a field.
// q is matched literally; regex metacharacters are escaped.
func Contains(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(q)), Options: "i"}
}

// AnyField returns an $or clause matching q in any of fields, or nil when
// q is blank. Array fields match when any element matches.
func AnyField(q string, fields ...string) bson.M {
	if strings.TrimSpace(q) == "" || len(fields) == 0 {
		return nil
	}
	re := Contains(q)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}

// IsAll reports whether v is blank or one of the "no filter" sentinels.
func IsAll(v string, sentinels ...string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	for _, s := range sentinels {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
