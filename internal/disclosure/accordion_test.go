package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var features = []string{"auth-roles", "interaction-content", "admin-moderation"}

func TestToggleLeavesSiblingsAlone(t *testing.T) {
	a := New(features, WithDefault("auth-roles"))
	before1, before3 := a.Expanded(features[0]), a.Expanded(features[2])

	require.NoError(t, a.Toggle(features[1]))

	assert.True(t, a.Expanded(features[1]))
	assert.Equal(t, before1, a.Expanded(features[0]))
	assert.Equal(t, before3, a.Expanded(features[2]))

	require.NoError(t, a.Toggle(features[1]))
	assert.False(t, a.Expanded(features[1]))
	assert.Equal(t, before1, a.Expanded(features[0]))
	assert.Equal(t, before3, a.Expanded(features[2]))
}

func TestDefaultsAndReset(t *testing.T) {
	a := New(features, WithDefault("admin-moderation", "missing"))
	assert.Equal(t, []string{"admin-moderation"}, a.Open())

	require.NoError(t, a.Toggle("auth-roles"))
	require.NoError(t, a.Toggle("admin-moderation"))
	assert.Equal(t, []string{"auth-roles"}, a.Open())

	a.Reset()
	assert.Equal(t, []string{"admin-moderation"}, a.Open())
}

func TestNoDefaultsStartsCollapsed(t *testing.T) {
	a := New(features)
	assert.Empty(t, a.Open())
}

func TestToggleUnknown(t *testing.T) {
	a := New(features)
	assert.ErrorIs(t, a.Toggle("nope"), ErrUnknownItem)
	assert.Empty(t, a.Open())
}

func TestSingleMode(t *testing.T) {
	a := New(features, WithMode(Single), WithDefault("auth-roles"))

	require.NoError(t, a.Toggle("admin-moderation"))
	assert.Equal(t, []string{"admin-moderation"}, a.Open())

	require.NoError(t, a.Toggle("admin-moderation"))
	assert.Empty(t, a.Open())
}

func TestSingleModeNotCollapsible(t *testing.T) {
	a := New(features, WithMode(Single), NotCollapsible(), WithDefault("auth-roles"))

	require.NoError(t, a.Toggle("auth-roles"))
	assert.Equal(t, []string{"auth-roles"}, a.Open())
}

func TestEncodeDecode(t *testing.T) {
	a := New(features)
	a.Decode("admin-moderation, ,bogus,auth-roles")
	assert.Equal(t, "auth-roles,admin-moderation", a.Encode())

	assert.Equal(t, "auth-roles,interaction-content,admin-moderation", a.EncodeToggled("interaction-content"))
	assert.Equal(t, "auth-roles,admin-moderation", a.Encode(), "EncodeToggled must not mutate")
	assert.Equal(t, "auth-roles,admin-moderation", a.EncodeToggled("bogus"))

	s := New(features, WithMode(Single))
	s.Decode("auth-roles,admin-moderation")
	assert.Equal(t, []string{"admin-moderation"}, s.Open())
}
