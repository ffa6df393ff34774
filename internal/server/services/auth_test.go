package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.SessionTokenValidityDuration = time.Hour
	return cfg
}

func newAuthService(t *testing.T) (*AuthService, *auth.SessionCodec) {
	t.Helper()
	cfg := testConfig()
	s := NewAuthService(nil, repomanager.NewMemoryRepositoryManager(), auth.NewSHA256Hasher(), cfg)
	codec := auth.NewSessionCodec([]byte(cfg.SecretKey), cfg.Issuer, cfg.Audience, cfg.SessionTokenValidityDuration)
	return s, codec
}

func bearer(token string) string { return common.DefaultAuthMarker + token }

func linkTokenFor(t *testing.T, login, password string) string {
	t.Helper()
	blob, err := auth.EncodeLinkToken(login, auth.NewSHA256Hasher().Hash(password))
	require.NoError(t, err)
	return blob
}

func ptr(v int64) *int64 { return &v }

// fakeUsersRepo returns user/err from reads and setErr from writes.
type fakeUsersRepo struct {
	user   *models.User
	err    error
	setErr error
}

func (f *fakeUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, f.err
}
func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	return f.user, f.err
}
func (f *fakeUsersRepo) GetUserByExternalID(context.Context, int64) (*models.User, error) {
	return f.user, f.err
}
func (f *fakeUsersRepo) SetExternalID(context.Context, string, *int64) (*models.User, error) {
	return nil, f.setErr
}
func (f *fakeUsersRepo) Update(context.Context, string, string, string) (*models.User, error) {
	return nil, f.setErr
}

type fakeRepoManager struct{ u usersrepo.Repository }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }

func newFakeService(u *fakeUsersRepo) *AuthService {
	return NewAuthService(nil, &fakeRepoManager{u: u}, auth.NewSHA256Hasher(), testConfig())
}

// --- CreateAccount ---

func TestCreateAccount_OnceThenAlreadyExists(t *testing.T) {
	s, codec := newAuthService(t)
	ctx := context.Background()

	sess, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", sess.User.Name)
	assert.NotEmpty(t, sess.User.ID)
	assert.False(t, sess.User.IsLinked())

	login, err := codec.Resolve(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", login)

	_, err = s.CreateAccount(ctx, "alice", "Other", "pw")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreateAccount_StoreFailureIsInternal(t *testing.T) {
	s := newFakeService(&fakeUsersRepo{err: errBoom{}})

	_, err := s.CreateAccount(context.Background(), "a", "A", "p")
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorIs(t, err, errBoom{})
	assert.Contains(t, err.Error(), "error creating user")
}

// --- Login / RestorePassword ---

func TestLogin_Flows(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	_, err = s.Login(ctx, "ghost", "pw1")
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials, "unknown login")

	_, err = s.Login(ctx, "alice", "PW1")
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials, "password is case-sensitive")

	sess, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
}

func TestLogin_StoreFailureIsInternal(t *testing.T) {
	s := newFakeService(&fakeUsersRepo{err: errBoom{}})

	_, err := s.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.NotErrorIs(t, err, common.ErrorIncorrectCredentials)
}

func TestLogin_CancelledContext(t *testing.T) {
	s, _ := newAuthService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Login(ctx, "alice", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRestorePassword(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	created, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	_, err = s.RestorePassword(ctx, "ghost", "x")
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)

	sess, err := s.RestorePassword(ctx, "alice", "pw2")
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, sess.User.ID)
	assert.Equal(t, "Alice", sess.User.Name)
	assert.NotEmpty(t, sess.Token)
}

func TestRestorePassword_UpdateFailures(t *testing.T) {
	u := &models.User{Login: "alice", Name: "Alice"}

	s := newFakeService(&fakeUsersRepo{user: u, setErr: common.ErrorNotFound})
	_, err := s.RestorePassword(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)

	s = newFakeService(&fakeUsersRepo{user: u, setErr: errBoom{}})
	_, err = s.RestorePassword(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestScenario_PasswordLifecycle(t *testing.T) {
	s, codec := newAuthService(t)
	ctx := context.Background()

	sess, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)
	login, err := codec.Resolve(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", login)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)

	_, err = s.RestorePassword(ctx, "alice", "pw2")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)

	_, err = s.Login(ctx, "alice", "pw2")
	assert.NoError(t, err)
}

// --- header resolution ---

func TestAuthenticate_HeaderResolution(t *testing.T) {
	s, codec := newAuthService(t)
	ctx := context.Background()
	sess, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	ghostToken, err := codec.Issue("ghost")
	require.NoError(t, err)
	foreign := auth.NewSessionCodec([]byte("other-secret"), "x", "y", time.Hour)
	foreignToken, err := foreign.Issue("alice")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"missing", "", common.ErrorUnauthenticated},
		{"marker only", common.DefaultAuthMarker, common.ErrorUnauthenticated},
		{"garbage", bearer("not-a-jwt"), common.ErrorUnauthenticated},
		{"wrong secret", bearer(foreignToken), common.ErrorUnauthenticated},
		{"unknown login", bearer(ghostToken), common.ErrorIncorrectCredentials},
		{"with marker", bearer(sess.Token), nil},
		{"without marker", sess.Token, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Authenticate(ctx, tc.header)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", got.User.Login)
			login, err := codec.Resolve(got.Token)
			require.NoError(t, err)
			assert.Equal(t, "alice", login)
		})
	}
}

func TestAuthenticate_AcceptsExpiredToken(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	cfg := testConfig()
	stale := auth.NewSessionCodec([]byte(cfg.SecretKey), cfg.Issuer, cfg.Audience, -time.Hour)
	token, err := stale.Issue("alice")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, bearer(token))
	assert.NoError(t, err)
}

func TestGenerateLinkToken(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	sess, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	_, err = s.GenerateLinkToken(ctx, "")
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	blob, err := s.GenerateLinkToken(ctx, bearer(sess.Token))
	require.NoError(t, err)

	lt, err := auth.DecodeLinkToken(blob)
	require.NoError(t, err)
	assert.Equal(t, "alice", lt.Login)
	assert.Equal(t, sess.User.PasswordHash, lt.Password)
	assert.Equal(t, linkTokenFor(t, "alice", "pw1"), blob)
}

// --- linking ---

func TestLinkExternalID_RejectsBadTokens(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	cases := map[string]string{
		"not base64":     "%%%",
		"unknown login":  linkTokenFor(t, "ghost", "pw1"),
		"wrong password": linkTokenFor(t, "alice", "pw2"),
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.LinkExternalID(ctx, blob, ptr(42))
			assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)
		})
	}
}

func TestLinkExternalID_DigestIsCaseInsensitive(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	sess, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	upper := []byte(sess.User.PasswordHash)
	for i, c := range upper {
		if c >= 'a' && c <= 'f' {
			upper[i] = c - 'a' + 'A'
		}
	}
	blob, err := auth.EncodeLinkToken("alice", string(upper))
	require.NoError(t, err)

	got, err := s.LinkExternalID(ctx, blob, ptr(42))
	require.NoError(t, err)
	require.NotNil(t, got.User.ExternalID)
	assert.Equal(t, int64(42), *got.User.ExternalID)
}

func TestLinkExternalID_ConflictPolicy(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)
	_, err = s.CreateAccount(ctx, "bob", "Bob", "pw")
	require.NoError(t, err)
	alice := linkTokenFor(t, "alice", "pw1")
	bob := linkTokenFor(t, "bob", "pw")

	got, err := s.LinkExternalID(ctx, alice, ptr(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), *got.User.ExternalID)

	_, err = s.LinkExternalID(ctx, alice, ptr(42))
	assert.NoError(t, err, "same id is idempotent")

	_, err = s.LinkExternalID(ctx, alice, ptr(7))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists, "different id on a linked user")

	_, err = s.LinkExternalID(ctx, bob, ptr(42))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists, "id held by another user")

	got, err = s.LinkExternalID(ctx, alice, nil)
	require.NoError(t, err, "clearing is always allowed")
	assert.Nil(t, got.User.ExternalID)

	_, err = s.LinkExternalID(ctx, bob, nil)
	assert.NoError(t, err, "nil on nil is a no-op")

	got, err = s.LinkExternalID(ctx, bob, ptr(42))
	require.NoError(t, err, "released id can be taken")
	assert.Equal(t, int64(42), *got.User.ExternalID)
}

func TestLinkExternalID_SameIDSkipsStoreWrite(t *testing.T) {
	hash := auth.NewSHA256Hasher().Hash("pw")
	u := &models.User{Login: "alice", PasswordHash: hash, ExternalID: ptr(42)}
	s := newFakeService(&fakeUsersRepo{user: u, setErr: errBoom{}})

	blob, err := auth.EncodeLinkToken("alice", hash)
	require.NoError(t, err)

	got, err := s.LinkExternalID(context.Background(), blob, ptr(42))
	require.NoError(t, err)
	assert.Same(t, u, got.User)
}

func TestLinkExternalID_StoreErrors(t *testing.T) {
	hash := auth.NewSHA256Hasher().Hash("pw")
	blob, err := auth.EncodeLinkToken("alice", hash)
	require.NoError(t, err)

	cases := []struct {
		name   string
		setErr error
		want   error
	}{
		{"vanished", common.ErrorNotFound, common.ErrorAlreadyExists},
		{"unique violation", common.ErrorAlreadyExists, common.ErrorAlreadyExists},
		{"driver failure", errBoom{}, common.ErrorInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &models.User{Login: "alice", PasswordHash: hash}
			s := newFakeService(&fakeUsersRepo{user: u, setErr: tc.setErr})
			_, err := s.LinkExternalID(context.Background(), blob, ptr(42))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnlinkExternalID(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)

	assert.False(t, s.UnlinkExternalID(ctx, 42), "unknown id")

	_, err = s.LinkExternalID(ctx, linkTokenFor(t, "alice", "pw1"), ptr(42))
	require.NoError(t, err)

	assert.True(t, s.UnlinkExternalID(ctx, 42))
	assert.False(t, s.UnlinkExternalID(ctx, 42), "already cleared")

	_, err = s.LoginByExternalID(ctx, 42)
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)
}

func TestUnlinkExternalID_StoreFailures(t *testing.T) {
	u := &models.User{Login: "alice", ExternalID: ptr(42)}

	assert.False(t, newFakeService(&fakeUsersRepo{err: errBoom{}}).UnlinkExternalID(context.Background(), 42))
	assert.False(t, newFakeService(&fakeUsersRepo{user: u, setErr: errBoom{}}).UnlinkExternalID(context.Background(), 42))
	assert.True(t, newFakeService(&fakeUsersRepo{user: u}).UnlinkExternalID(context.Background(), 42))
}

func TestLoginByExternalID_StoreFailureIsInternal(t *testing.T) {
	s := newFakeService(&fakeUsersRepo{err: errBoom{}})
	_, err := s.LoginByExternalID(context.Background(), 42)
	assert.True(t, errors.Is(err, common.ErrorInternal))
}

func TestScenario_TelegramLifecycle(t *testing.T) {
	s, codec := newAuthService(t)
	ctx := context.Background()
	_, err := s.CreateAccount(ctx, "alice", "Alice", "pw1")
	require.NoError(t, err)
	_, err = s.RestorePassword(ctx, "alice", "pw2")
	require.NoError(t, err)

	linked, err := s.LinkExternalID(ctx, linkTokenFor(t, "alice", "pw2"), ptr(42))
	require.NoError(t, err)
	require.NotNil(t, linked.User.ExternalID)
	assert.Equal(t, int64(42), *linked.User.ExternalID)

	sess, err := s.LoginByExternalID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.User.Login)
	login, err := codec.Resolve(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", login)

	assert.True(t, s.UnlinkExternalID(ctx, 42))

	_, err = s.LoginByExternalID(ctx, 42)
	assert.ErrorIs(t, err, common.ErrorIncorrectCredentials)
}
