package access

import (
	"hemolink-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildScopeFilter merges the resolved org scope into a collection filter.
// The org_id clause is applied for every caller, system admins included;
// widening happens solely in the scope resolver so the two layers can never
// disagree. An empty scope yields a filter that matches nothing.
func BuildScopeFilter(scope models.OrgIDSet, extra bson.M) bson.M {
	filter := bson.M{
		"org_id": bson.M{"$in": scope.ToSlice()},
	}
	for key, value := range extra {
		filter[key] = value
	}
	return filter
}
