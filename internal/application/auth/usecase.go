package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// bcryptCost factor de trabajo para el hash de passwords.
const bcryptCost = 10

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tx        repository.TxRunner
	jwtSecret string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tx repository.TxRunner, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, jwtSecret: jwtSecret}
}

// Register crea un usuario: valida campos, verifica unicidad del email y
// persiste el password como hash bcrypt, todo dentro de una transacción.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, domain.Unprocessable("%s", dto.MissingFieldsMessage(missing))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(r repository.TxRepos) error {
		existing, err := r.Users.FindByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict("Email already exists.")
		}
		return r.Users.Create(ctx, &entity.User{
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: string(hash),
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Constraint único de la DB: misma respuesta que la verificación previa.
			return nil, domain.Conflict("Email already exists.")
		}
		return nil, err
	}
	return &dto.RegisterResponse{Message: "User registered successfully."}, nil
}

// Login verifica email y password y emite un access token de una hora.
// Email desconocido y password incorrecto responden con el mismo mensaje
// para no revelar cuál de las dos verificaciones falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.Unprocessable("Email and password are required.")
	}

	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("Email or password is invalid.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthorized("Email or password is invalid.")
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}
