package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"selli/internal/model"
)

func testUser() *model.User {
	phone := "600700800"
	return &model.User{
		ID:        "507f1f77bcf86cd799439011",
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@email.com",
		Phone:     &phone,
		Image:     model.DefaultUserImage,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueToken(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "Test", claims.FirstName)
	assert.Equal(t, "User", claims.LastName)
	assert.Equal(t, "test@email.com", claims.Email)
	assert.NotNil(t, claims.Phone)
	assert.Equal(t, "600700800", *claims.Phone)
	assert.Equal(t, model.DefaultUserImage, claims.Image)
	assert.NotEmpty(t, claims.ID, "token carries a JTI for revocation")
}

func TestJWTService_Expiry(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueToken(testUser())
	assert.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").IssueToken(testUser())
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret").VerifyToken("not.a.token")
	assert.Error(t, err)
}
