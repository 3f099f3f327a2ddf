package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCode(t *testing.T) {
	err := NotFound("client not found", "abc")
	wrapped := Wrap(err, "HierarchyService.ClientDetail")

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.Contains(t, wrapped.Error(), "HierarchyService.ClientDetail")
	assert.Contains(t, wrapped.Error(), "client not found")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "any.Op"))
}

func TestWrapUnclassified(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk on fire"), "Store.GetClient", "abc")
	assert.Equal(t, CodeInternal, CodeOf(wrapped))
	assert.True(t, errors.As(wrapped, new(*Error)))
}

func TestWrapInheritsArgs(t *testing.T) {
	err := Wrap(Conflict("user already exists", "alice@example.com"), "UserService.Create")

	var ce *Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"alice@example.com"}, ce.Args)
}

func TestExtensions(t *testing.T) {
	t.Run("single arg flattens", func(t *testing.T) {
		ext := NotFound("not found", "abc").Extensions()
		assert.Equal(t, "NOT_FOUND", ext["code"])
		assert.Equal(t, "abc", ext["invalidArgs"])
	})

	t.Run("multiple args stay a list", func(t *testing.T) {
		ext := Conflict("conflict", "a", "b").Extensions()
		assert.Equal(t, []string{"a", "b"}, ext["invalidArgs"])
	})

	t.Run("no args omits the key", func(t *testing.T) {
		ext := Unauthenticated("login required").Extensions()
		assert.Equal(t, "AUTHENTICATION_REQUIRED", ext["code"])
		_, present := ext["invalidArgs"]
		assert.False(t, present)
	})
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsInvalidArgument(InvalidArgument("bad id")))
	assert.True(t, IsConflict(Conflict("taken")))
	assert.True(t, IsUnauthenticated(Unauthenticated("nope")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
}
