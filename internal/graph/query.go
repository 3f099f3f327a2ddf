package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/dnlmlszl/realtime-dms-backend/internal/service"
)

func newQuery(r *Resolver, t *typeRegistry) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "world", nil
				},
			},

			"users": &graphql.Field{
				Type: graphql.NewList(t.user),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.Users(p.Context)
				},
			},
			"usersFilter": &graphql.Field{
				Type: graphql.NewList(t.user),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: userFilterInput},
					"sort":   &graphql.ArgumentConfig{Type: userSortInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var filter service.UserFilter
					if raw, ok := p.Args["filter"].(map[string]interface{}); ok {
						if email, ok := raw["email"].(string); ok {
							filter.Email = email
						}
						if fav, ok := raw["isFavorite"].(bool); ok {
							filter.IsFavorite = &fav
						}
					}
					var sortBy *service.UserSort
					if raw, ok := p.Args["sort"].(map[string]interface{}); ok {
						field, _ := raw["field"].(string)
						order, _ := raw["order"].(string)
						sortBy = &service.UserSort{Field: field, Order: order}
					}
					return r.Users.UsersFilter(p.Context, filter, sortBy)
				},
			},
			"usersCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.UsersCount(p.Context)
				},
			},
			"singleUser": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.SingleUser(p.Context, stringArg(p, "userId"))
				},
			},
			"me": &graphql.Field{
				Type: t.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.Me(p.Context)
				},
			},

			"clients": &graphql.Field{
				Type: graphql.NewList(t.client),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.Clients(p.Context)
				},
			},
			"clientsCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ClientsCount(p.Context)
				},
			},
			"clientDetail": &graphql.Field{
				Type: t.client,
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ClientDetail(p.Context, stringArg(p, "clientId"))
				},
			},

			"categories": &graphql.Field{
				Type: graphql.NewList(t.category),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.Categories(p.Context)
				},
			},
			"findCategory": &graphql.Field{
				Type: t.category,
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.FindCategory(p.Context, stringArg(p, "categoryId"))
				},
			},

			"subgroups": &graphql.Field{
				Type: graphql.NewList(t.subgroup),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.Subgroups(p.Context)
				},
			},
			"subgroupDetails": &graphql.Field{
				Type: t.subgroup,
				Args: graphql.FieldConfigArgument{
					"subgroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.SubgroupDetails(p.Context, stringArg(p, "subgroupId"))
				},
			},

			"processes": &graphql.Field{
				Type: graphql.NewList(t.process),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.Processes(p.Context)
				},
			},
			"findProcess": &graphql.Field{
				Type: t.process,
				Args: graphql.FieldConfigArgument{
					"processId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.FindProcess(p.Context, stringArg(p, "processId"))
				},
			},

			"teams": &graphql.Field{
				Type: graphql.NewList(t.team),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Teams.Teams(p.Context)
				},
			},
			"teamDetails": &graphql.Field{
				Type: t.team,
				Args: graphql.FieldConfigArgument{
					"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Teams.TeamDetails(p.Context, stringArg(p, "teamId"))
				},
			},

			"getVisibleCategoriesForClient": &graphql.Field{
				Type: graphql.NewList(t.category),
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Visibility.VisibleCategoriesForClient(p.Context, stringArg(p, "clientId"))
				},
			},
		},
	})
}
