package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/dnlmlszl/realtime-dms-backend/internal/middleware"
	"github.com/dnlmlszl/realtime-dms-backend/internal/service"
)

func newMutation(r *Resolver, t *typeRegistry) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"email":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"firstname":    &graphql.ArgumentConfig{Type: graphql.String},
					"lastname":     &graphql.ArgumentConfig{Type: graphql.String},
					"profileImage": &graphql.ArgumentConfig{Type: graphql.String},
					"description":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.Create(p.Context, service.CreateUserParams{
						Email:        stringArg(p, "email"),
						Password:     stringArg(p, "password"),
						FirstName:    stringArg(p, "firstname"),
						LastName:     stringArg(p, "lastname"),
						ProfileImage: stringArg(p, "profileImage"),
						Description:  stringArg(p, "description"),
					})
				},
			},
			"login": &graphql.Field{
				Type: t.token,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, _, err := r.Users.Login(p.Context, stringArg(p, "email"), stringArg(p, "password"))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"value": token}, nil
				},
			},

			"createTeam": &graphql.Field{
				Type: t.team,
				Args: graphql.FieldConfigArgument{
					"teamName":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"subsidiary": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"leader":     &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					// Absent an explicit leader the caller leads the team.
					leaderID := stringArg(p, "leader")
					if leaderID == "" {
						leaderID = middleware.GetUserID(p.Context)
					}
					return r.Teams.CreateTeam(p.Context, stringArg(p, "teamName"), stringArg(p, "subsidiary"), leaderID)
				},
			},

			"addFavorite": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.AddFavorite(p.Context, stringArg(p, "userId"), stringArg(p, "clientId"))
				},
			},
			"toggleFavorite": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Users.ToggleFavorite(p.Context, stringArg(p, "userId"), stringArg(p, "clientId"))
				},
			},

			"addClient": &graphql.Field{
				Type: t.client,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"taxId":       &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.AddClient(p.Context, stringArg(p, "name"), stringArg(p, "taxId"), stringArg(p, "description"))
				},
			},

			"addCategory": &graphql.Field{
				Type: t.category,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.AddCategory(p.Context, stringArg(p, "name"))
				},
			},
			"addCategoryToClient": &graphql.Field{
				Type: t.client,
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.AddCategoryToClient(p.Context, stringArg(p, "name"), stringArg(p, "clientId"))
				},
			},
			"addCategoryToMultipleClients": &graphql.Field{
				Type: t.clientBatch,
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"clientIds":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.AddCategoryToMultipleClients(p.Context, stringArg(p, "categoryId"), stringListArg(p, "clientIds"))
				},
			},
			"reassignCategory": &graphql.Field{
				Type: t.category,
				Args: graphql.FieldConfigArgument{
					"categoryId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"oldClientId": &graphql.ArgumentConfig{Type: graphql.ID},
					"newClientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ReassignCategory(p.Context, stringArg(p, "categoryId"), stringArg(p, "oldClientId"), stringArg(p, "newClientId"))
				},
			},
			"toggleCategory": &graphql.Field{
				Type: t.category,
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ToggleCategory(p.Context, stringArg(p, "categoryId"))
				},
			},

			"addSubgroup": &graphql.Field{
				Type: t.subgroup,
				Args: graphql.FieldConfigArgument{
					"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"categoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.AddSubgroup(p.Context, stringArg(p, "name"), stringArg(p, "categoryId"))
				},
			},
			"reassignSubgroup": &graphql.Field{
				Type: t.subgroup,
				Args: graphql.FieldConfigArgument{
					"subgroupId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"oldCategoryId": &graphql.ArgumentConfig{Type: graphql.ID},
					"newCategoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ReassignSubgroup(p.Context, stringArg(p, "subgroupId"), stringArg(p, "oldCategoryId"), stringArg(p, "newCategoryId"))
				},
			},
			"toggleSubgroup": &graphql.Field{
				Type: t.subgroup,
				Args: graphql.FieldConfigArgument{
					"subgroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ToggleSubgroup(p.Context, stringArg(p, "subgroupId"))
				},
			},

			"addProcess": &graphql.Field{
				Type: t.process,
				Args: graphql.FieldConfigArgument{
					"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"subgroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.AddProcess(p.Context, stringArg(p, "name"), stringArg(p, "subgroupId"))
				},
			},
			"batchAddProcesses": &graphql.Field{
				Type: t.processBatch,
				Args: graphql.FieldConfigArgument{
					"processIds": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
					"subgroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.BatchAddProcesses(p.Context, stringListArg(p, "processIds"), stringArg(p, "subgroupId"))
				},
			},
			"reassignProcess": &graphql.Field{
				Type: t.process,
				Args: graphql.FieldConfigArgument{
					"processId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"oldSubgroupId": &graphql.ArgumentConfig{Type: graphql.ID},
					"newSubgroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ReassignProcess(p.Context, stringArg(p, "processId"), stringArg(p, "oldSubgroupId"), stringArg(p, "newSubgroupId"))
				},
			},
			"toggleProcess": &graphql.Field{
				Type: t.process,
				Args: graphql.FieldConfigArgument{
					"processId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Hierarchy.ToggleProcess(p.Context, stringArg(p, "processId"))
				},
			},

			"hideEntityForClient": &graphql.Field{
				Type: t.settings,
				Args: graphql.FieldConfigArgument{
					"userId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"clientId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"entityId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"entityType": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Visibility.HideEntityForClient(p.Context, stringArg(p, "userId"), stringArg(p, "clientId"), stringArg(p, "entityId"), stringArg(p, "entityType"))
				},
			},
		},
	})
}
