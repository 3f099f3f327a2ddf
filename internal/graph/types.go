package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// typeRegistry holds the object types of the schema. Scalar fields resolve by
// json tag; relational fields carry explicit resolvers that walk reference id
// lists through the Shaper, so missing references drop out of the result
// instead of failing the query.
type typeRegistry struct {
	process      *graphql.Object
	subgroup     *graphql.Object
	category     *graphql.Object
	client       *graphql.Object
	user         *graphql.Object
	team         *graphql.Object
	hiddenEntity *graphql.Object
	settings     *graphql.Object
	token        *graphql.Object
	clientBatch  *graphql.Object
	processBatch *graphql.Object
}

func newTypes(r *Resolver) *typeRegistry {
	t := &typeRegistry{}

	t.process = graphql.NewObject(graphql.ObjectConfig{
		Name: "Process",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"hidden": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	t.subgroup = graphql.NewObject(graphql.ObjectConfig{
		Name: "Subgroup",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"hidden": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"processes": &graphql.Field{
				Type: graphql.NewList(t.process),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					subgroup, ok := p.Source.(*models.Subgroup)
					if !ok {
						return nil, nil
					}
					return r.Shaper.Processes(p.Context, subgroup.Processes), nil
				},
			},
		},
	})

	t.category = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"hidden": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"subgroups": &graphql.Field{
				Type: graphql.NewList(t.subgroup),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, ok := p.Source.(*models.Category)
					if !ok {
						return nil, nil
					}
					return r.Shaper.Subgroups(p.Context, category.Subgroups), nil
				},
			},
		},
	})

	t.client = graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"taxId":       &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"isFavorite":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"processGroups": &graphql.Field{
				Type: graphql.NewList(t.category),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					client, ok := p.Source.(*models.Client)
					if !ok {
						return nil, nil
					}
					return r.Shaper.Categories(p.Context, client.ProcessGroups), nil
				},
			},
		},
	})

	t.hiddenEntity = graphql.NewObject(graphql.ObjectConfig{
		Name: "HiddenEntity",
		Fields: graphql.Fields{
			"entityId":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"entityType": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"hidden":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	t.settings = graphql.NewObject(graphql.ObjectConfig{
		Name: "ClientSpecificSettings",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":         &graphql.Field{Type: graphql.ID},
			"clientId":       &graphql.Field{Type: graphql.ID},
			"hiddenEntities": &graphql.Field{Type: graphql.NewList(t.hiddenEntity)},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"firstname":    &graphql.Field{Type: graphql.String},
			"lastname":     &graphql.Field{Type: graphql.String},
			"profileImage": &graphql.Field{Type: graphql.String},
			"description":  &graphql.Field{Type: graphql.String},
			"role":         &graphql.Field{Type: graphql.String},
			"registrationDate": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := p.Source.(*models.User)
					if !ok {
						return nil, nil
					}
					return user.CreatedAt, nil
				},
			},
			"settings": &graphql.Field{Type: graphql.NewList(graphql.ID)},
			"favorites": &graphql.Field{
				Type: graphql.NewList(t.client),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := p.Source.(*models.User)
					if !ok {
						return nil, nil
					}
					return r.Shaper.Clients(p.Context, user.Favorites), nil
				},
			},
		},
	})

	t.team = graphql.NewObject(graphql.ObjectConfig{
		Name: "Team",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"teamName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"subsidiary": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"leader": &graphql.Field{
				Type: t.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					team, ok := p.Source.(*models.Team)
					if !ok {
						return nil, nil
					}
					return r.Shaper.User(p.Context, team.LeaderID), nil
				},
			},
			"members": &graphql.Field{
				Type: graphql.NewList(t.user),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					team, ok := p.Source.(*models.Team)
					if !ok {
						return nil, nil
					}
					return r.Shaper.Users(p.Context, team.Members), nil
				},
			},
			"clients": &graphql.Field{
				Type: graphql.NewList(t.client),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					team, ok := p.Source.(*models.Team)
					if !ok {
						return nil, nil
					}
					return r.Shaper.Clients(p.Context, team.Clients), nil
				},
			},
		},
	})

	// User.team closes the user ↔ team cycle, so it is attached after both
	// types exist.
	t.user.AddFieldConfig("team", &graphql.Field{
		Type: t.team,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user, ok := p.Source.(*models.User)
			if !ok {
				return nil, nil
			}
			return r.Shaper.Team(p.Context, user.TeamID), nil
		},
	})

	t.token = graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"value": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.clientBatch = graphql.NewObject(graphql.ObjectConfig{
		Name: "ClientBatchResult",
		Fields: graphql.Fields{
			"clients":          &graphql.Field{Type: graphql.NewList(t.client)},
			"skippedClientIds": &graphql.Field{Type: graphql.NewList(graphql.ID)},
		},
	})

	t.processBatch = graphql.NewObject(graphql.ObjectConfig{
		Name: "ProcessBatchResult",
		Fields: graphql.Fields{
			"processes":         &graphql.Field{Type: graphql.NewList(t.process)},
			"skippedProcessIds": &graphql.Field{Type: graphql.NewList(graphql.ID)},
		},
	})

	return t
}

// userFilterInput and userSortInput mirror the usersFilter arguments.
var userFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isFavorite": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var userSortInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserSort",
	Fields: graphql.InputObjectConfigFieldMap{
		"field": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"order": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})
