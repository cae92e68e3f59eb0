package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "eventhub/cli/internal/errors"
)

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Full name is required"},
		{"   ", "Full name is required"},
		{"A", "Name must be at least 2 characters"},
		{"Ada99", "Name can only contain letters and spaces"},
		{"Ada Lovelace", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.in), tt.in)
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Email address is required"},
		{"ada", "Enter a valid email"},
		{"ada@example", "Enter a valid email"},
		{"a b@c.d", "Enter a valid email"},
		{"a@b.com", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.in), tt.in)
	}
}

func TestPassword(t *testing.T) {
	assert.Equal(t, "Password is required", Password(""))
	assert.Equal(t, "Password must be at least 6 characters", Password("12345"))
	assert.Empty(t, Password("123456"))
}

func TestSignup(t *testing.T) {
	e := Signup(SignupForm{Name: "Ada", Email: "bad", Password: "123", PhotoURL: ""})
	assert.False(t, e.OK())
	assert.Equal(t, []string{"email", "password", "photoURL"}, e.Fields())

	ok := Signup(SignupForm{Name: "Ada", Email: "a@b.com", Password: "secret", PhotoURL: "https://x/y.png"})
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())
}

func TestLogin(t *testing.T) {
	assert.True(t, Login("a@b.com", "secret").OK())
	e := Login("", "")
	assert.Len(t, e, 2)
}

func TestEvent(t *testing.T) {
	e := Event(EventForm{Title: "Meetup", Date: " "})
	assert.Equal(t, []string{"creatorName", "date", "description", "location", "time"}, e.Fields())
	assert.Equal(t, "Creator name is required.", e["creatorName"])

	full := Event(EventForm{Title: "a", Description: "b", Date: "c", Time: "d", Location: "e", CreatorName: "f"})
	assert.True(t, full.OK())
}

func TestErrors_Err(t *testing.T) {
	err := Login("nope", "").Err()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ValidationFailed))
	assert.True(t, strings.Contains(err.Error(), "email: Enter a valid email"))
	assert.True(t, strings.Contains(err.Error(), "password: Password is required"))
}

func TestLogin_ReportsRuleMessages(t *testing.T) {
	e := Login("  ada@example.com  ", "12345")
	assert.Equal(t, []string{"password"}, e.Fields(), "surrounding blanks in email are ignored")
	assert.Equal(t, "Password must be at least 6 characters", e["password"])

	e = Login("ada@example.com", "      ")
	assert.True(t, e.OK(), "passwords are not trimmed")
}

func TestSignup_FirstFailingRuleWins(t *testing.T) {
	e := Signup(SignupForm{Name: "7", Email: "a@b.com", Password: "secret", PhotoURL: "x"})
	assert.Equal(t, map[string]string{"name": "Name must be at least 2 characters"}, map[string]string(e))
}
