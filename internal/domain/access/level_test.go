package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

func TestRankOrdering(t *testing.T) {
	owner, err := access.LevelOwner.Rank()
	require.NoError(t, err)
	admin, err := access.LevelAdmin.Rank()
	require.NoError(t, err)
	sub, err := access.LevelSubscriber.Rank()
	require.NoError(t, err)
	pub, err := access.LevelPublic.Rank()
	require.NoError(t, err)

	assert.Equal(t, owner, admin)
	assert.Less(t, admin, sub)
	assert.Less(t, sub, pub)
}

func TestRankNoneFails(t *testing.T) {
	_, err := access.LevelNone.Rank()
	require.ErrorIs(t, err, access.ErrAccessDenied)

	_, err = access.Level("bogus").Rank()
	require.ErrorIs(t, err, access.ErrAccessDenied)
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name    string
		l, r    access.Level
		want    bool
		wantErr bool
	}{
		{name: "owner over public", l: access.LevelOwner, r: access.LevelPublic, want: true},
		{name: "admin over subscriber", l: access.LevelAdmin, r: access.LevelSubscriber, want: true},
		{name: "owner vs admin tie", l: access.LevelOwner, r: access.LevelAdmin, want: true},
		{name: "subscriber under admin", l: access.LevelSubscriber, r: access.LevelAdmin, want: false},
		{name: "public under subscriber", l: access.LevelPublic, r: access.LevelSubscriber, want: false},
		{name: "none on the left errors", l: access.LevelNone, r: access.LevelPublic, wantErr: true},
		{name: "none on the right errors", l: access.LevelOwner, r: access.LevelNone, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.l.AtLeast(tt.r)
			if tt.wantErr {
				require.ErrorIs(t, err, access.ErrAccessDenied)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibilityValid(t *testing.T) {
	assert.True(t, access.VisibilityPrivate.Valid())
	assert.True(t, access.VisibilitySubscribers.Valid())
	assert.True(t, access.VisibilityPublic.Valid())
	assert.False(t, access.Visibility(3).Valid())
	assert.False(t, access.Visibility(-1).Valid())
}
