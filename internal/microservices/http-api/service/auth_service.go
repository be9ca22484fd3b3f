package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creatorhub/database"
	"creatorhub/internal/config"
	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/repository"
	"creatorhub/internal/middleware/auth"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailInUse         = apperrors.Conflict("email already registered")
	ErrInvalidCredentials = apperrors.Unauthorized("invalid credentials")
	ErrPasswordTooLong    = apperrors.BadRequest("password must be at most 72 bytes")
)

// Claims is the JWT payload. Logout is client-side; tokens live until they expire.
type Claims struct {
	UserID string      `json:"id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, in dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	VerifyToken(tokenString string) (*Claims, bool)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  cfg.JWTExpiry,
		log:       logger.With("auth"),
	}
}

// Register creates the account and, when a name is supplied, the matching
// empty profile for the user's role.
func (s *authService) Register(ctx context.Context, in dto.RegisterInput) (*dto.AuthResponse, error) {
	email := dto.NormalizeEmail(in.Email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
	}

	if in.Name == "" {
		err = s.userRepo.Create(ctx, user)
	} else {
		err = s.userRepo.CreateWithProfile(ctx, user, func(userID string) any {
			return initialProfile(in.Role, userID, in.Name)
		})
	}
	if err != nil {
		// a concurrent registration won the unique index
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailInUse.Wrap(err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("user registered")
	return s.authResponse(user)
}

func initialProfile(role models.Role, userID, name string) any {
	switch role {
	case models.RoleBrand:
		return &models.BrandProfile{UserID: userID, CompanyName: name}
	default:
		return &models.CreatorProfile{
			UserID:         userID,
			DisplayName:    name,
			Niches:         []string{},
			PromotionTypes: []string{},
		}
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("lookup email: %w", err)
		}
		// same bcrypt cost as a real mismatch
		auth.BurnCompare(password)
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		s.log.Debug().Str("user_id", user.ID).Msg("password mismatch")
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// VerifyToken never errors: any token that is malformed, expired, signed
// with another algorithm or secret, or carries an unknown role is rejected.
func (s *authService) VerifyToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, false
	}
	return claims, true
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found", "find user")
	}
	return user, nil
}

func (s *authService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.AuthResponse{
		User:  dto.FromModelToUserResponse(user),
		Token: token,
	}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
