package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+62 812-3456-7890", "Hi, about my booking")
	assert.Equal(t, "https://wa.me/6281234567890?text=Hi%2C+about+my+booking", link)
}

func TestWhatsAppLinkNoMessage(t *testing.T) {
	link := WhatsAppLink("6281234567890", "")
	assert.Equal(t, "https://wa.me/6281234567890", link)
}

func TestShareTokenRoundTrip(t *testing.T) {
	key := "0123456789abcdef" // 16 bytes
	id := uuid.New()

	token, err := EncryptShareToken(id, key)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := DecryptShareToken(token, key)
	assert.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestShareTokenBadInputs(t *testing.T) {
	key := "0123456789abcdef"

	_, err := DecryptShareToken("", key)
	assert.Error(t, err)

	_, err = DecryptShareToken("not-a-token", key)
	assert.Error(t, err)

	_, err = EncryptShareToken(uuid.New(), "short")
	assert.Error(t, err)
}

func TestShareTokenWrongKeyFails(t *testing.T) {
	id := uuid.New()
	token, err := EncryptShareToken(id, "0123456789abcdef")
	assert.NoError(t, err)

	_, err = DecryptShareToken(token, "fedcba9876543210")
	assert.Error(t, err)
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(3, time.Millisecond, 10*time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryGivesUp(t *testing.T) {
	calls := 0
	boom := errors.New("down")
	err := Retry(3, time.Millisecond, 10*time.Millisecond, func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestSignJWTClaims(t *testing.T) {
	id := uuid.NewString()
	signed, err := SignJWT("secret", id, "admin", 60)
	assert.NoError(t, err)

	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(*Claims)
	assert.Equal(t, id, claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
