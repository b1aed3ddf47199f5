package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
)

func testService() *JWTService {
	return NewJWTService(JWTConfig{
		Keys: KeyRing{
			models.RoleStudent: "student-secret",
			models.RoleTeacher: "teacher-secret",
			models.RoleAdmin:   "admin-secret",
		},
		TokenIssuer: "coursehub.test",
	})
}

func TestGenerateAndValidatePerRole(t *testing.T) {
	svc := testService()

	for _, role := range models.AllRoles {
		t.Run(string(role), func(t *testing.T) {
			token, err := svc.GenerateToken(role, "a@x.com", 42)
			require.NoError(t, err)

			claims, err := svc.ValidateToken(role, token)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role)
			assert.Equal(t, "a@x.com", claims.Email)
			assert.Equal(t, int64(42), claims.ID)
		})
	}
}

func TestTokenExpiresAfterThirtyDays(t *testing.T) {
	svc := testService()
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken(models.RoleTeacher, "t@x.com", 3)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(29 * 24 * time.Hour) }
	_, err = svc.ValidateToken(models.RoleTeacher, token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(31 * 24 * time.Hour) }
	_, err = svc.ValidateToken(models.RoleTeacher, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenFromAnotherRoleIsRejected(t *testing.T) {
	svc := testService()

	token, err := svc.GenerateToken(models.RoleStudent, "s@x.com", 9)
	require.NoError(t, err)

	_, err = svc.ValidateToken(models.RoleTeacher, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRoleClaimMustMatchHeaderRole(t *testing.T) {
	svc := NewJWTService(JWTConfig{Keys: KeyRing{
		models.RoleStudent: "shared",
		models.RoleTeacher: "shared",
	}})

	token, err := svc.GenerateToken(models.RoleStudent, "s@x.com", 9)
	require.NoError(t, err)

	_, err = svc.ValidateToken(models.RoleTeacher, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRejectsNonHMACAlgorithm(t *testing.T) {
	svc := testService()
	claims := &Claims{Role: models.RoleAdmin, ID: 1}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(models.RoleAdmin, unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingKey(t *testing.T) {
	svc := NewJWTService(JWTConfig{Keys: KeyRing{models.RoleStudent: "s"}})

	_, err := svc.GenerateToken(models.RoleAdmin, "a@x.com", 1)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ExtractBearerToken("  ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("p")
	require.NoError(t, err)

	assert.NotEqual(t, "p", hash)
	assert.True(t, CheckPassword(hash, "p"))
	assert.False(t, CheckPassword(hash, "q"))
	assert.False(t, CheckPassword("not-a-hash", "p"))
}
