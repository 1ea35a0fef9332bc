package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/streamhub/streamhub/internal/server/models"
	"github.com/streamhub/streamhub/internal/server/services"
)

// NewSchema builds the executable GraphQL schema over the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "User model",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(ObjectIDScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ID, nil
				},
			},
			"email": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "User's email address",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).Email, nil
				},
			},
			// the password hash never crosses this boundary
		},
	})

	streamType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Stream",
		Description: "Stream embedded post content",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(ObjectIDScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Stream).ID, nil
				},
			},
			"title": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Stream's title",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Stream).Title, nil
				},
			},
			"description": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Stream's description",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Stream).Description, nil
				},
			},
			"url": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Stream's url",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Stream).URL, nil
				},
			},
			"author": &graphql.Field{
				Type:        userType,
				Description: "Stream's author",
				Resolve:     r.streamAuthor,
			},
		},
	})

	userResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UserResponse",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*services.AuthResult).User, nil
				},
			},
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*services.AuthResult).Token, nil
				},
			},
		},
	})

	authInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AuthInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	streamInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "StreamInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":          &graphql.InputObjectFieldConfig{Type: ObjectIDScalar},
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"url":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"stream": &graphql.Field{
				Type: streamType,
				Args: graphql.FieldConfigArgument{
					"streamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(ObjectIDScalar)},
				},
				Resolve: r.stream,
			},
			"streams": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(streamType)),
				Resolve: r.streamsOwned,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(authInputType)},
				},
				Resolve: r.register,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(authInputType)},
				},
				Resolve: r.login,
			},
			"addStream": &graphql.Field{
				Type: graphql.NewNonNull(streamType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(streamInputType)},
				},
				Resolve: r.addStream,
			},
			"editStream": &graphql.Field{
				Type: graphql.NewNonNull(streamType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(streamInputType)},
				},
				Resolve: r.editStream,
			},
			"deleteStream": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"streamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(ObjectIDScalar)},
				},
				Resolve: r.deleteStream,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
