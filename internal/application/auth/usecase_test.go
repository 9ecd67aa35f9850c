package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will-aam/stock/internal/application/auth"
	"github.com/will-aam/stock/internal/application/dto"
	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/infrastructure/memory"
	"github.com/will-aam/stock/pkg/jwt"
)

func newAuthUseCase() *auth.UseCase {
	return auth.NewUseCase(memory.NewUserStore(), auth.JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "stock-count",
	})
}

func TestRegister_NormalizaEmail(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{Email: "  Ana@Sistema.COM ", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@sistema.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@sistema.com", Password: "secreta123"})
	require.NoError(t, err)

	// El duplicado se detecta aun con otra capitalización.
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ANA@sistema.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validaciones(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	casos := []struct {
		nombre string
		in     dto.RegisterRequest
	}{
		{"email vacío", dto.RegisterRequest{Password: "x"}},
		{"password vacío", dto.RegisterRequest{Email: "a@b.com"}},
		{"confirmación no coincide", dto.RegisterRequest{Email: "a@b.com", Password: "uno", ConfirmPassword: "dos"}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	registered, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@sistema.com", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@sistema.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, email, err := jwt.Parse("secreto-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "ana@sistema.com", email)
}

func TestLogin_Fallos(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@sistema.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@sistema.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@sistema.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
