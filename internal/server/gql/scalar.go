// Package gql defines the GraphQL schema, resolvers, and scalars for the
// streamhub API.
package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDFromValue converts boundary input into a 12-byte ObjectID. Invalid
// hex yields nil, which graphql-go reports as an argument error; the request
// fails instead of panicking further down.
func objectIDFromValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil
		}
		return id
	case primitive.ObjectID:
		return v
	default:
		return nil
	}
}

// ObjectIDScalar transmits MongoDB ObjectIDs as hex strings at the API
// boundary.
var ObjectIDScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "ObjectId",
	Description: "MongoDB ObjectId scalar type",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case primitive.ObjectID:
			return v.Hex()
		case *primitive.ObjectID:
			if v == nil {
				return nil
			}
			return v.Hex()
		default:
			return nil
		}
	},
	ParseValue: objectIDFromValue,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if s, ok := valueAST.(*ast.StringValue); ok {
			return objectIDFromValue(s.Value)
		}
		return nil
	},
})
