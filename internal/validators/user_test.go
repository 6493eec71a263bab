package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}
}

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	req := validRegisterRequest()
	require.NoError(t, v.Validate(ctx, req))
	require.NoError(t, v.Validate(ctx, &req))

	login := models.LoginRequest{Username: "alice", Password: "x"}
	require.NoError(t, v.Validate(ctx, login))
	require.NoError(t, v.Validate(ctx, &login))

	require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	require.ErrorIs(t, v.Validate(ctx, req, "bogus"), ErrUnknownField)
}

func TestUserValidator_RegisterRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "empty username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantErr: ErrEmptyUsername},
		{name: "blank username", mutate: func(r *models.RegisterRequest) { r.Username = "   " }, wantErr: ErrEmptyUsername},
		{name: "long username", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("u", MaxUsernameLength+1) }, wantErr: ErrUsernameTooLong},
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: ErrInvalidEmail},
		{name: "no at sign", mutate: func(r *models.RegisterRequest) { r.Email = "alice.example.com" }, wantErr: ErrInvalidEmail},
		{name: "display name form", mutate: func(r *models.RegisterRequest) { r.Email = "Alice <alice@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "empty password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "72 byte password", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 72) }},
		{name: "73 byte password", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_LoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "alice"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "alice"}, FieldUsername))
}
