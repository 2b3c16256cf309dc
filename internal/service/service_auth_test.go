package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/mock"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

func newTestServerAuthSvc(t *testing.T, ctrl *gomock.Controller) (service.AuthService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	svc := service.NewAuthService(users, sessions, logger.Nop())
	return svc, users, sessions
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.UserID)
			assert.Equal(t, "alice", u.Username)
			// The plaintext never reaches the repository.
			assert.NotEqual(t, "master-pw", u.PasswordHash)
			assert.Contains(t, u.PasswordHash, "$argon2id$")
			assert.Len(t, u.Salt, 32)
			return u, nil
		})

	registered, err := svc.RegisterUser(ctx, "alice", "master-pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(ctx, "alice", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestAuthService_RegisterUser_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestServerAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), "", "pw")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), "alice", "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, sessions := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.HashPassword("master-pw")
	require.NoError(t, err)

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: "u-1", Username: "alice", PasswordHash: hash, Salt: salt}, nil)

	var storedHash string
	sessions.EXPECT().
		CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.SessionRecord) error {
			assert.Equal(t, "u-1", rec.UserID)
			assert.Len(t, rec.SessionHash, 64) // hex sha3-256
			storedHash = rec.SessionHash
			return nil
		})

	user, session, err := svc.Login(ctx, "alice", "master-pw")
	require.NoError(t, err)

	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, salt, user.Salt)
	// The hash never travels back to the client.
	assert.Empty(t, user.PasswordHash)

	require.NotEmpty(t, session.ID)
	// Only the hash of the issued id is persisted.
	assert.Equal(t, crypto.HashSessionID(session.ID), storedHash)
	assert.NotEqual(t, session.ID, storedHash)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.HashPassword("right-pw")
	require.NoError(t, err)

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: "u-1", PasswordHash: hash}, nil)

	_, _, err = svc.Login(ctx, "alice", "wrong-pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrBadLogin)
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Login(ctx, "ghost", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrBadLogin)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().
		DeleteSession(ctx, crypto.HashSessionID("sess-1")).
		Return(nil)

	require.NoError(t, svc.Logout(ctx, "sess-1"))

	// Empty session id is a no-op, no repository call.
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_ValidateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().
		FindUserIDBySessionHash(ctx, crypto.HashSessionID("sess-1")).
		Return("u-1", nil)

	userID, err := svc.ValidateSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestAuthService_ValidateSession_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().
		FindUserIDBySessionHash(ctx, gomock.Any()).
		Return("", store.ErrNoSessionWasFound)

	_, err := svc.ValidateSession(ctx, "dead-session")
	assert.ErrorIs(t, err, service.ErrNoSession)

	_, err = svc.ValidateSession(ctx, "")
	assert.ErrorIs(t, err, service.ErrNoSession)
}
