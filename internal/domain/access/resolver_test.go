package access_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
)

// fakeDirectory backs resolver tests with in-memory accounts. Each account's
// user id mirrors its account id with a fixed offset so tests can pass "the
// user of account X" without bookkeeping.
type fakeDirectory struct {
	accounts map[uuid.UUID]access.Account
	users    map[uuid.UUID]uuid.UUID
	subs     map[[2]uuid.UUID]accounts.Referral
	err      error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		accounts: map[uuid.UUID]access.Account{},
		users:    map[uuid.UUID]uuid.UUID{},
		subs:     map[[2]uuid.UUID]accounts.Referral{},
	}
}

func (d *fakeDirectory) add(acc access.Account) (accountID, userID uuid.UUID) {
	userID = uuid.New()
	d.accounts[acc.ID] = acc
	d.users[userID] = acc.ID
	return acc.ID, userID
}

func (d *fakeDirectory) subscribe(seekerAccID, targetAccID uuid.UUID) {
	d.subs[[2]uuid.UUID{seekerAccID, targetAccID}] = accounts.Referral{ReferrerID: targetAccID, SubscriberID: seekerAccID}
}

func (d *fakeDirectory) subscribeUntil(seekerAccID, targetAccID uuid.UUID, expiresAt time.Time) {
	d.subs[[2]uuid.UUID{seekerAccID, targetAccID}] = accounts.Referral{
		ReferrerID: targetAccID, SubscriberID: seekerAccID, ExpiresAt: &expiresAt,
	}
}

func (d *fakeDirectory) GetAccount(_ context.Context, id uuid.UUID) (access.Account, error) {
	if d.err != nil {
		return access.Account{}, d.err
	}
	acc, ok := d.accounts[id]
	if !ok {
		return access.Account{}, access.ErrNotFound
	}
	return acc, nil
}

func (d *fakeDirectory) GetAccountByUser(_ context.Context, userID uuid.UUID) (access.Account, error) {
	if d.err != nil {
		return access.Account{}, d.err
	}
	accID, ok := d.users[userID]
	if !ok {
		return access.Account{}, access.ErrNotFound
	}
	return d.accounts[accID], nil
}

func (d *fakeDirectory) HasSubscription(_ context.Context, seekerID, targetID uuid.UUID) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	ref, ok := d.subs[[2]uuid.UUID{seekerID, targetID}]
	if !ok {
		return false, nil
	}
	return !ref.Expired(time.Now()), nil
}

func account(v access.Visibility, admin, banned bool) access.Account {
	return access.Account{ID: uuid.New(), Kind: "creator", IsAdmin: admin, IsBanned: banned, Visibility: v}
}

func TestResolveBannedSeekerShortCircuits(t *testing.T) {
	dir := newFakeDirectory()
	// banned seeker is also admin, also subscribed, even targets itself
	seekerAcc := account(access.VisibilityPublic, true, true)
	_, seekerUser := dir.add(seekerAcc)
	targetAcc, _ := dir.add(account(access.VisibilityPublic, false, false))
	dir.subscribe(seekerAcc.ID, targetAcc)

	r := access.NewResolver(dir)
	for _, target := range []access.Account{dir.accounts[targetAcc], seekerAcc} {
		lvl, err := r.Resolve(context.Background(), &seekerUser, target)
		require.NoError(t, err)
		assert.Equal(t, access.LevelNone, lvl)
	}
}

func TestResolveBannedTarget(t *testing.T) {
	dir := newFakeDirectory()
	target := account(access.VisibilityPublic, false, true)
	dir.add(target)
	_, plainUser := dir.add(account(access.VisibilityPublic, false, false))
	adminAcc := account(access.VisibilityPublic, true, false)
	_, adminUser := dir.add(adminAcc)

	r := access.NewResolver(dir)

	lvl, err := r.Resolve(context.Background(), &plainUser, target)
	require.NoError(t, err)
	assert.Equal(t, access.LevelNone, lvl)

	lvl, err = r.Resolve(context.Background(), nil, target)
	require.NoError(t, err)
	assert.Equal(t, access.LevelNone, lvl)

	// admins and the owner still see a banned account
	lvl, err = r.Resolve(context.Background(), &adminUser, target)
	require.NoError(t, err)
	assert.Equal(t, access.LevelAdmin, lvl)
}

func TestResolveOwnerBeforeAdmin(t *testing.T) {
	dir := newFakeDirectory()
	// an admin looking at its own private account is owner, not admin
	acc := account(access.VisibilityPrivate, true, false)
	_, user := dir.add(acc)

	r := access.NewResolver(dir)
	lvl, err := r.Resolve(context.Background(), &user, acc)
	require.NoError(t, err)
	assert.Equal(t, access.LevelOwner, lvl)
}

func TestResolveAdminOverride(t *testing.T) {
	dir := newFakeDirectory()
	_, adminUser := dir.add(account(access.VisibilityPrivate, true, false))
	target := account(access.VisibilityPrivate, false, false)
	dir.add(target)

	r := access.NewResolver(dir)
	lvl, err := r.Resolve(context.Background(), &adminUser, target)
	require.NoError(t, err)
	assert.Equal(t, access.LevelAdmin, lvl)
}

func TestResolveAnonymous(t *testing.T) {
	dir := newFakeDirectory()
	r := access.NewResolver(dir)

	tests := []struct {
		name   string
		target access.Account
		want   access.Level
	}{
		{name: "public target", target: account(access.VisibilityPublic, false, false), want: access.LevelPublic},
		{name: "subscribers target", target: account(access.VisibilitySubscribers, false, false), want: access.LevelNone},
		{name: "private target", target: account(access.VisibilityPrivate, false, false), want: access.LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := r.Resolve(context.Background(), nil, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lvl)
		})
	}
}

func TestResolveDanglingSeekerTreatedAsAnonymous(t *testing.T) {
	dir := newFakeDirectory()
	target := account(access.VisibilityPublic, false, false)
	dir.add(target)
	dangling := uuid.New()

	r := access.NewResolver(dir)
	lvl, err := r.Resolve(context.Background(), &dangling, target)
	require.NoError(t, err)
	assert.Equal(t, access.LevelPublic, lvl)
}

func TestResolveSubscriberUpgrade(t *testing.T) {
	dir := newFakeDirectory()
	seekerAcc := account(access.VisibilityPrivate, false, false)
	_, seekerUser := dir.add(seekerAcc)

	tests := []struct {
		name       string
		target     access.Account
		subscribed bool
		want       access.Level
	}{
		{name: "subscribed to subscribers target", target: account(access.VisibilitySubscribers, false, false), subscribed: true, want: access.LevelSubscriber},
		{name: "subscribed to public target", target: account(access.VisibilityPublic, false, false), subscribed: true, want: access.LevelSubscriber},
		{name: "subscribed to private target", target: account(access.VisibilityPrivate, false, false), subscribed: true, want: access.LevelNone},
		{name: "not subscribed, subscribers target", target: account(access.VisibilitySubscribers, false, false), want: access.LevelNone},
		{name: "not subscribed, public target", target: account(access.VisibilityPublic, false, false), want: access.LevelPublic},
		{name: "not subscribed, private target", target: account(access.VisibilityPrivate, false, false), want: access.LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir.subs = map[[2]uuid.UUID]accounts.Referral{}
			dir.add(tt.target)
			if tt.subscribed {
				dir.subscribe(seekerAcc.ID, tt.target.ID)
			}
			r := access.NewResolver(dir)
			lvl, err := r.Resolve(context.Background(), &seekerUser, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lvl)
		})
	}
}

func TestResolveExpiredSubscription(t *testing.T) {
	dir := newFakeDirectory()
	seekerAcc := account(access.VisibilityPrivate, false, false)
	_, seekerUser := dir.add(seekerAcc)

	subsTarget := account(access.VisibilitySubscribers, false, false)
	dir.add(subsTarget)
	pubTarget := account(access.VisibilityPublic, false, false)
	dir.add(pubTarget)

	expired := time.Now().Add(-time.Minute)
	dir.subscribeUntil(seekerAcc.ID, subsTarget.ID, expired)
	dir.subscribeUntil(seekerAcc.ID, pubTarget.ID, expired)

	r := access.NewResolver(dir)

	// an expired edge grants nothing over a subscribers-only target
	lvl, err := r.Resolve(context.Background(), &seekerUser, subsTarget)
	require.NoError(t, err)
	assert.Equal(t, access.LevelNone, lvl)

	// and falls back to plain public access on an open target
	lvl, err = r.Resolve(context.Background(), &seekerUser, pubTarget)
	require.NoError(t, err)
	assert.Equal(t, access.LevelPublic, lvl)

	// renewing the edge restores subscriber access
	dir.subscribeUntil(seekerAcc.ID, subsTarget.ID, time.Now().Add(time.Hour))
	lvl, err = r.Resolve(context.Background(), &seekerUser, subsTarget)
	require.NoError(t, err)
	assert.Equal(t, access.LevelSubscriber, lvl)
}

func TestResolveTargetLookup(t *testing.T) {
	dir := newFakeDirectory()
	target := account(access.VisibilityPublic, false, false)
	dir.add(target)

	r := access.NewResolver(dir)
	lvl, err := r.ResolveTarget(context.Background(), nil, target.ID)
	require.NoError(t, err)
	assert.Equal(t, access.LevelPublic, lvl)

	_, err = r.ResolveTarget(context.Background(), nil, uuid.New())
	require.ErrorIs(t, err, access.ErrNotFound)
}

func TestResolveInfrastructureErrorPropagates(t *testing.T) {
	dir := newFakeDirectory()
	target := account(access.VisibilityPublic, false, false)
	dir.add(target)
	infra := errors.New("connection refused")
	dir.err = infra

	seeker := uuid.New()
	r := access.NewResolver(dir)
	_, err := r.Resolve(context.Background(), &seeker, target)
	require.ErrorIs(t, err, infra)
	require.NotErrorIs(t, err, access.ErrAccessDenied)
}
