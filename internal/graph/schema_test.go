package graph

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnlmlszl/realtime-dms-backend/internal/auth"
	"github.com/dnlmlszl/realtime-dms-backend/internal/service"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage/sqlite"
)

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret-key", time.Hour)

	schema, err := NewSchema(&Resolver{
		Hierarchy:  service.NewHierarchyService(store),
		Users:      service.NewUserService(store, auth.NewPasswordAuthenticator(store), jwtManager, logger),
		Teams:      service.NewTeamService(store),
		Visibility: service.NewVisibilityService(store),
		Shaper:     service.NewShaper(store),
	})
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema graphql.Schema, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()

	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
}

func data(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()

	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)
	m, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return m
}

func field(t *testing.T, m map[string]interface{}, name string) map[string]interface{} {
	t.Helper()

	child, ok := m[name].(map[string]interface{})
	require.True(t, ok, "missing object field %q in %v", name, m)
	return child
}

func TestHierarchyEndToEnd(t *testing.T) {
	schema := newTestSchema(t)

	client := field(t, data(t, exec(t, schema,
		`mutation { addClient(name: "Acme", taxId: "12345") { id name } }`, nil)), "addClient")
	clientID := client["id"].(string)

	data(t, exec(t, schema, `mutation { addCategory(name: "Ops") { id } }`, nil))

	attached := field(t, data(t, exec(t, schema,
		`mutation($clientId: ID!) { addCategoryToClient(clientId: $clientId, name: "Ops") { id processGroups { id name } } }`,
		map[string]interface{}{"clientId": clientID})), "addCategoryToClient")
	groups := attached["processGroups"].([]interface{})
	require.Len(t, groups, 1)
	categoryID := groups[0].(map[string]interface{})["id"].(string)

	subgroup := field(t, data(t, exec(t, schema,
		`mutation($categoryId: ID!) { addSubgroup(name: "QA", categoryId: $categoryId) { id name } }`,
		map[string]interface{}{"categoryId": categoryID})), "addSubgroup")
	subgroupID := subgroup["id"].(string)

	process := field(t, data(t, exec(t, schema,
		`mutation($subgroupId: ID!) { addProcess(name: "Review", subgroupId: $subgroupId) { id name } }`,
		map[string]interface{}{"subgroupId": subgroupID})), "addProcess")
	processID := process["id"].(string)

	t.Run("nested client detail", func(t *testing.T) {
		detail := field(t, data(t, exec(t, schema,
			`query($clientId: ID!) {
				clientDetail(clientId: $clientId) {
					name
					processGroups { name subgroups { name processes { id name hidden } } }
				}
			}`,
			map[string]interface{}{"clientId": clientID})), "clientDetail")
		assert.Equal(t, "Acme", detail["name"])

		groups := detail["processGroups"].([]interface{})
		require.Len(t, groups, 1)
		subgroups := groups[0].(map[string]interface{})["subgroups"].([]interface{})
		require.Len(t, subgroups, 1)
		processes := subgroups[0].(map[string]interface{})["processes"].([]interface{})
		require.Len(t, processes, 1)
		assert.Equal(t, processID, processes[0].(map[string]interface{})["id"])
		assert.Equal(t, "Review", processes[0].(map[string]interface{})["name"])
	})

	t.Run("counts", func(t *testing.T) {
		got := data(t, exec(t, schema, `query { clientsCount }`, nil))
		assert.Equal(t, 1, got["clientsCount"])
	})

	t.Run("visible categories respect global toggle", func(t *testing.T) {
		data(t, exec(t, schema,
			`mutation($categoryId: ID!) { toggleCategory(categoryId: $categoryId) { hidden } }`,
			map[string]interface{}{"categoryId": categoryID}))

		got := data(t, exec(t, schema,
			`query($clientId: ID!) { getVisibleCategoriesForClient(clientId: $clientId) { id } }`,
			map[string]interface{}{"clientId": clientID}))
		assert.Empty(t, got["getVisibleCategoriesForClient"])
	})
}

func TestErrorExtensions(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("malformed id", func(t *testing.T) {
		result := exec(t, schema, `query { findCategory(categoryId: "garbage") { id } }`, nil)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "BAD_USER_INPUT", result.Errors[0].Extensions["code"])
	})

	t.Run("missing entity", func(t *testing.T) {
		result := exec(t, schema,
			`query { findCategory(categoryId: "7b0d2c3e-0000-4000-8000-000000000000") { id } }`, nil)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "NOT_FOUND", result.Errors[0].Extensions["code"])
	})

	t.Run("anonymous me", func(t *testing.T) {
		result := exec(t, schema, `query { me { id } }`, nil)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "AUTHENTICATION_REQUIRED", result.Errors[0].Extensions["code"])
	})
}

func TestUserFlowEndToEnd(t *testing.T) {
	schema := newTestSchema(t)

	created := field(t, data(t, exec(t, schema,
		`mutation { createUser(email: "alice@example.com", password: "supersecret", firstname: "Alice") { id email role } }`,
		nil)), "createUser")
	assert.Equal(t, "admin", created["role"])

	t.Run("duplicate email conflicts", func(t *testing.T) {
		result := exec(t, schema,
			`mutation { createUser(email: "alice@example.com", password: "supersecret") { id } }`, nil)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "CONFLICT", result.Errors[0].Extensions["code"])
	})

	t.Run("login returns a token", func(t *testing.T) {
		token := field(t, data(t, exec(t, schema,
			`mutation { login(email: "alice@example.com", password: "supersecret") { value } }`, nil)), "login")
		assert.NotEmpty(t, token["value"])
	})

	t.Run("wrong password is unauthenticated", func(t *testing.T) {
		result := exec(t, schema,
			`mutation { login(email: "alice@example.com", password: "wrongpassword") { value } }`, nil)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "AUTHENTICATION_REQUIRED", result.Errors[0].Extensions["code"])
	})
}
