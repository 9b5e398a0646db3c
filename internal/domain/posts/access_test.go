package posts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

func TestBestAlbumRoute(t *testing.T) {
	tests := []struct {
		name  string
		level access.Level
		post  access.Decision
		vis   []access.Visibility
		want  access.Decision
	}{
		{
			name: "no albums, no route",
			level: access.LevelPublic, post: access.Granted,
			vis:  nil,
			want: access.Denied,
		},
		{
			name: "restrictive album caps granted post",
			level: access.LevelPublic, post: access.Granted,
			vis:  []access.Visibility{access.VisibilitySubscribers},
			want: access.Redacted,
		},
		{
			name: "best route wins across albums",
			level: access.LevelPublic, post: access.Granted,
			vis:  []access.Visibility{access.VisibilityPrivate, access.VisibilitySubscribers, access.VisibilityPublic},
			want: access.Granted,
		},
		{
			name: "open album cannot lift redacted post",
			level: access.LevelPublic, post: access.Redacted,
			vis:  []access.Visibility{access.VisibilityPublic},
			want: access.Redacted,
		},
		{
			name: "subscriber through subscribers album",
			level: access.LevelSubscriber, post: access.Granted,
			vis:  []access.Visibility{access.VisibilitySubscribers},
			want: access.Granted,
		},
		{
			name: "private albums give nothing",
			level: access.LevelSubscriber, post: access.Granted,
			vis:  []access.Visibility{access.VisibilityPrivate},
			want: access.Denied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bestAlbumRoute(tt.level, tt.post, tt.vis))
		})
	}
}
