package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

type item struct {
	name string
	vis  access.Visibility
	feed bool
}

func (i item) GateVisibility() access.Visibility { return i.vis }
func (i item) InFeed() bool                      { return i.feed }

func TestSingle(t *testing.T) {
	tests := []struct {
		name  string
		level access.Level
		vis   access.Visibility
		want  access.Decision
	}{
		{name: "owner sees private", level: access.LevelOwner, vis: access.VisibilityPrivate, want: access.Granted},
		{name: "admin sees private", level: access.LevelAdmin, vis: access.VisibilityPrivate, want: access.Granted},
		{name: "public sees public", level: access.LevelPublic, vis: access.VisibilityPublic, want: access.Granted},
		{name: "public gets subscribers redacted", level: access.LevelPublic, vis: access.VisibilitySubscribers, want: access.Redacted},
		{name: "public denied private", level: access.LevelPublic, vis: access.VisibilityPrivate, want: access.Denied},
		{name: "subscriber sees subscribers", level: access.LevelSubscriber, vis: access.VisibilitySubscribers, want: access.Granted},
		{name: "subscriber sees public", level: access.LevelSubscriber, vis: access.VisibilityPublic, want: access.Granted},
		{name: "subscriber denied private", level: access.LevelSubscriber, vis: access.VisibilityPrivate, want: access.Denied},
		{name: "none denied everything", level: access.LevelNone, vis: access.VisibilityPublic, want: access.Denied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.Single(tt.level, tt.vis))
		})
	}
}

func TestFetchOne(t *testing.T) {
	got, err := access.FetchOne(access.LevelSubscriber, item{name: "a", vis: access.VisibilitySubscribers})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.name)

	// redacted, not denied: existence acknowledged, content withheld
	got, err = access.FetchOne(access.LevelPublic, item{name: "b", vis: access.VisibilitySubscribers})
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = access.FetchOne(access.LevelPublic, item{name: "c", vis: access.VisibilityPrivate})
	require.ErrorIs(t, err, access.ErrAccessDenied)
}

func TestFetchListFeedOmitsNonFeedItems(t *testing.T) {
	items := []item{
		{name: "feed-public", vis: access.VisibilityPublic, feed: true},
		{name: "off-feed", vis: access.VisibilityPublic, feed: false},
		{name: "feed-subscribers", vis: access.VisibilitySubscribers, feed: true},
	}

	out := access.FetchList(access.LevelPublic, items, access.ToFeed())
	require.Len(t, out, 2)
	require.NotNil(t, out[0])
	assert.Equal(t, "feed-public", out[0].name)
	// subscriber-only item is present but nulled out
	assert.Nil(t, out[1])
}

func TestFetchListAlbumMinimumRule(t *testing.T) {
	items := []item{
		{name: "public", vis: access.VisibilityPublic},
		{name: "subscribers", vis: access.VisibilitySubscribers},
		{name: "private", vis: access.VisibilityPrivate},
	}

	// restrictive album caps a visible-alone public item
	out := access.FetchList(access.LevelPublic, items, access.ToAlbum(access.VisibilitySubscribers))
	require.Len(t, out, 2)
	assert.Nil(t, out[0])
	assert.Nil(t, out[1])

	// a public album does not unlock a private item
	out = access.FetchList(access.LevelSubscriber, items, access.ToAlbum(access.VisibilityPublic))
	require.Len(t, out, 2)
	require.NotNil(t, out[0])
	assert.Equal(t, "public", out[0].name)
	require.NotNil(t, out[1])
	assert.Equal(t, "subscribers", out[1].name)

	// owner sees everything regardless of album level
	out = access.FetchList(access.LevelOwner, items, access.ToAlbum(access.VisibilityPrivate))
	require.Len(t, out, 3)
	for i, it := range out {
		require.NotNil(t, it)
		assert.Equal(t, items[i].name, it.name)
	}
}

func TestFetchListPreservesOrder(t *testing.T) {
	items := []item{
		{name: "c", vis: access.VisibilityPublic, feed: true},
		{name: "a", vis: access.VisibilityPublic, feed: true},
		{name: "b", vis: access.VisibilityPublic, feed: true},
	}
	out := access.FetchList(access.LevelPublic, items, access.ToFeed())
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].name)
	assert.Equal(t, "a", out[1].name)
	assert.Equal(t, "b", out[2].name)
}

func TestCanEdit(t *testing.T) {
	assert.True(t, access.CanEdit(access.LevelOwner, false))
	assert.True(t, access.CanEdit(access.LevelOwner, true))
	assert.True(t, access.CanEdit(access.LevelAdmin, true))
	assert.False(t, access.CanEdit(access.LevelAdmin, false))
	assert.False(t, access.CanEdit(access.LevelSubscriber, true))
	assert.False(t, access.CanEdit(access.LevelPublic, true))
	assert.False(t, access.CanEdit(access.LevelNone, true))
}
