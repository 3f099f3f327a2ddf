// Package graph exposes the service layer as a GraphQL API. The schema is
// code-first: types and resolvers are declared in Go and delegate to the
// services, which own validation and error classification. Classified errors
// carry their code and offending ids into the response's error extensions.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/dnlmlszl/realtime-dms-backend/internal/service"
)

// Resolver bundles the services the schema resolves against.
type Resolver struct {
	Hierarchy  *service.HierarchyService
	Users      *service.UserService
	Teams      *service.TeamService
	Visibility *service.VisibilityService
	Shaper     *service.Shaper
}

// NewSchema builds the executable schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newTypes(r)
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    newQuery(r, t),
		Mutation: newMutation(r, t),
	})
}

// stringArg reads a string argument, empty when absent.
func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

// stringListArg reads a list-of-ID argument.
func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, _ := p.Args[name].([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
