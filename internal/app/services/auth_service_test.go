package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		Keys: auth.KeyRing{
			models.RoleStudent: "student-secret",
			models.RoleTeacher: "teacher-secret",
			models.RoleAdmin:   "admin-secret",
		},
		TokenExp:    30 * 24 * time.Hour,
		TokenIssuer: "coursehub-test",
	})
}

func TestSignUpThenLogin(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	jwtService := newTestJWT()
	svc := NewAuthService(accounts, jwtService, zerolog.Nop())

	account, err := svc.SignUp(ctx, dto.SignUpRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.NotEqual(t, "p", account.Password)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "p", Role: "student"})
	require.NoError(t, err)
	assert.True(t, resp.LoginStatus)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, account.ID, resp.ID)

	claims, err := jwtService.ValidateToken(models.RoleStudent, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)

	// A token signed with the student key does not verify under the teacher key.
	_, err = jwtService.ValidateToken(models.RoleTeacher, resp.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLoginTokenExpiresInThirtyDays(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	svc := NewAuthService(accounts, newTestJWT(), zerolog.Nop())

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "p", Role: "student"})
	require.NoError(t, err)

	claims := &auth.Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(resp.Token, claims)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLoginSoftFailures(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	svc := NewAuthService(accounts, fakeTokens{}, zerolog.Nop())

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Name: "A", Email: "a@x.com", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "wrong", Role: "student"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ghost@x.com", Password: "right", Role: "student"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// The account exists as a student, not as a teacher.
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "a@x.com", Password: "right", Role: "teacher"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsBadInput(t *testing.T) {
	svc := NewAuthService(newFakeAccounts(), fakeTokens{}, zerolog.Nop())

	tests := []struct {
		name string
		req  dto.LoginRequest
		want error
	}{
		{"missing email", dto.LoginRequest{Password: "p", Role: "student"}, apperrors.ErrValidationFailed},
		{"missing password", dto.LoginRequest{Email: "a@x.com", Role: "student"}, apperrors.ErrValidationFailed},
		{"missing role", dto.LoginRequest{Email: "a@x.com", Password: "p"}, apperrors.ErrValidationFailed},
		{"unknown role", dto.LoginRequest{Email: "a@x.com", Password: "p", Role: "janitor"}, apperrors.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeAccounts(), fakeTokens{}, zerolog.Nop())

	_, err := svc.SignUp(ctx, dto.SignUpRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, dto.SignUpRequest{Name: "B", Email: "a@x.com", Password: "q"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
