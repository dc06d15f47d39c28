package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/testutil"
	"brasileirao-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvatarStore struct {
	url         string
	err         error
	contentType string
	data        []byte
}

func (s *stubAvatarStore) PutAvatar(_ context.Context, userID, contentType string, data []byte) (string, error) {
	s.contentType = contentType
	s.data = data
	if s.err != nil {
		return "", s.err
	}
	return s.url + userID, nil
}

func TestUpdateProfile(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	fan := testutil.User(t, env.db, "fan")
	testutil.User(t, env.db, "outro")

	info, err := env.profile.Update(ctx, fan.ID, &dto.UpdateProfileRequest{Name: strPtr(" Novo Nome "), Email: strPtr("Novo@Example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", info.Name)
	assert.Equal(t, "novo@example.com", info.Email)

	// 自己当前的邮箱不算冲突
	_, err = env.profile.Update(ctx, fan.ID, &dto.UpdateProfileRequest{Email: strPtr("novo@example.com")})
	require.NoError(t, err)

	_, err = env.profile.Update(ctx, fan.ID, &dto.UpdateProfileRequest{Email: strPtr("outro@example.com")})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = env.profile.Update(ctx, fan.ID, &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, err = env.profile.Update(ctx, "missing", &dto.UpdateProfileRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	session, err := env.auth.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "antiga123"}, "")
	require.NoError(t, err)
	userID := session.User.ID

	err = env.profile.ChangePassword(ctx, userID, &dto.ChangePasswordRequest{CurrentPassword: "errada", NewPassword: "nova12345"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, env.profile.ChangePassword(ctx, userID, &dto.ChangePasswordRequest{CurrentPassword: "antiga123", NewPassword: "nova12345"}))

	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "nova12345"}, "")
	require.NoError(t, err)
	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "antiga123"}, "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestUpdateAvatar(t *testing.T) {
	pixel := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	t.Run("http url", func(t *testing.T) {
		env := newEnv(t)
		fan := testutil.User(t, env.db, "fan")
		info, err := env.profile.UpdateAvatar(context.Background(), fan.ID, &dto.UpdateAvatarRequest{AvatarURL: "https://cdn.example.com/a.png"})
		require.NoError(t, err)
		require.NotNil(t, info.AvatarURL)
		assert.Equal(t, "https://cdn.example.com/a.png", *info.AvatarURL)
	})

	t.Run("data url stored inline without object storage", func(t *testing.T) {
		env := newEnv(t)
		fan := testutil.User(t, env.db, "fan")
		info, err := env.profile.UpdateAvatar(context.Background(), fan.ID, &dto.UpdateAvatarRequest{AvatarURL: pixel})
		require.NoError(t, err)
		assert.Equal(t, pixel, *info.AvatarURL)
	})

	t.Run("data url uploaded", func(t *testing.T) {
		env := newEnv(t)
		store := &stubAvatarStore{url: "http://minio.local/avatars/"}
		env.profile.WithAvatarStore(store)
		fan := testutil.User(t, env.db, "fan")
		info, err := env.profile.UpdateAvatar(context.Background(), fan.ID, &dto.UpdateAvatarRequest{AvatarURL: pixel})
		require.NoError(t, err)
		assert.Equal(t, "http://minio.local/avatars/"+fan.ID, *info.AvatarURL)
		assert.Equal(t, "image/png", store.contentType)
		assert.Equal(t, []byte("png-bytes"), store.data)
	})

	t.Run("upload failure keeps data url", func(t *testing.T) {
		env := newEnv(t)
		env.profile.WithAvatarStore(&stubAvatarStore{err: errors.New("minio down")})
		fan := testutil.User(t, env.db, "fan")
		info, err := env.profile.UpdateAvatar(context.Background(), fan.ID, &dto.UpdateAvatarRequest{AvatarURL: pixel})
		require.NoError(t, err)
		assert.Equal(t, pixel, *info.AvatarURL)
	})

	t.Run("rejects", func(t *testing.T) {
		env := newEnv(t)
		fan := testutil.User(t, env.db, "fan")
		tooBig := "data:image/jpeg;base64," + strings.Repeat("A", (MaxAvatarBytes/3)*4+8)

		tests := []struct {
			name, avatar string
			want         error
		}{
			{"ftp", "ftp://example.com/a.png", ErrInvalidAvatar},
			{"not image", "data:text/plain;base64,aGVsbG8=", ErrInvalidAvatar},
			{"not base64", "data:image/png,raw", ErrInvalidAvatar},
			{"empty payload", "data:image/png;base64,", ErrInvalidAvatar},
			{"too large", tooBig, ErrAvatarTooLarge},
		}
		for _, tt := range tests {
			_, err := env.profile.UpdateAvatar(context.Background(), fan.ID, &dto.UpdateAvatarRequest{AvatarURL: tt.avatar})
			assert.ErrorIs(t, err, tt.want, tt.name)
		}
	})
}

func TestPasswordStoredHashed(t *testing.T) {
	env := newEnv(t)
	session, err := env.auth.Register(context.Background(), &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"}, "")
	require.NoError(t, err)

	var stored string
	require.NoError(t, env.db.Table("users").Select("password").Where("id = ?", session.User.ID).Scan(&stored).Error)
	assert.NotEqual(t, "segredo123", stored)
	assert.True(t, utils.VerifyPassword("segredo123", stored))
}
