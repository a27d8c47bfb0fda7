package auth

import (
	"chat-circle/errors"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MyPasswordIsS0Strong!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestCompareMalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "$bcrypt$nope")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestRegistrationValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"Valid request", RegisterRequest{"test@example.com", "ComplexPass123!", "Alice"}, nil},
		{"Valid request without name", RegisterRequest{"test@example.com", "ComplexPass123!", ""}, nil},
		{"Invalid email", RegisterRequest{"notanemail", "ComplexPass123!", ""}, errors.ErrInvalidInput},
		{"Password too short", RegisterRequest{"test@example.com", "Short1!", ""}, errors.ErrInvalidInput},
		{"Missing digit", RegisterRequest{"test@example.com", "NoDigitPass!", ""}, errors.ErrInvalidPassword},
		{"Missing special char", RegisterRequest{"test@example.com", "NoSpecialChar123", ""}, errors.ErrInvalidPassword},
		{"Missing uppercase", RegisterRequest{"test@example.com", "nouppercase123!", ""}, errors.ErrInvalidPassword},
		{"Password too long", RegisterRequest{"test@example.com", strings.Repeat("a", 73), ""}, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a_test_secret_that_is_long_enough", time.Hour)

	token, claims, err := issuer.Issue("u1", []string{"user"})
	req.NoError(err)
	req.NotEmpty(claims.ID)

	verified, err := issuer.Verify(token)
	req.NoError(err)
	req.Equal("u1", verified.UserID)
	req.Equal(claims.ID, verified.ID)
	req.Equal([]string{"user"}, verified.Roles)
}

func TestVerifyRejectsForeignAndExpiredTokens(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("first_secret_first_secret_first", time.Hour)
	other := NewTokenIssuer("second_secret_second_secret_sec", time.Hour)

	token, _, err := other.Issue("u1", nil)
	req.NoError(err)
	_, err = issuer.Verify(token)
	req.ErrorIs(err, errors.ErrInvalidToken)

	// Given a token issued two hours ago with a one hour lifetime
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := issuer.Issue("u1", nil)
	req.NoError(err)
	issuer.now = time.Now

	_, err = issuer.Verify(expired)
	req.ErrorIs(err, errors.ErrInvalidToken)

	_, err = issuer.Verify("not.a.token")
	req.ErrorIs(err, errors.ErrInvalidToken)
}

func TestBearerTokenAndIdentity(t *testing.T) {
	req := require.New(t)

	token, ok := BearerToken("Bearer abc.def")
	req.True(ok)
	req.Equal("abc.def", token)
	_, ok = BearerToken("Basic abc")
	req.False(ok)
	_, ok = BearerToken("")
	req.False(ok)

	ctx := WithIdentity(context.Background(), &Claims{UserID: "u1"})
	id, ok := UserID(ctx)
	req.True(ok)
	req.Equal("u1", id)
	_, ok = UserID(context.Background())
	req.False(ok)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
