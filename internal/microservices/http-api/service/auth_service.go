package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hostelhub/internal/config"
	"hostelhub/internal/middleware/auth"
	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/repository"
	"hostelhub/internal/shared"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	ValidateToken(tokenString string) (*shared.AuthClaims, error)
}

// accessClaims is the JWT body of an access token.
type accessClaims struct {
	shared.AuthClaims
	jwt.RegisteredClaims
}

type authService struct {
	userRepo       repository.UserRepository
	jwtSecret      []byte
	issuer         string
	accessTokenTTL time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:       userRepo,
		jwtSecret:      []byte(cfg.JWTSecret),
		issuer:         cfg.JWTIssuer,
		accessTokenTTL: cfg.AccessTokenTTL,
		logger:         slog.Default(),
		now:            time.Now,
	}
}

// Login: authenticates a user by email and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		auth.BurnCompare(password)
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		auth.BurnCompare(password)
		return nil, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := shared.AuthClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		HostelID: user.HostelID,
	}
	token, err := s.generateAccessToken(claims)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			HostelID: user.HostelID,
		},
	}, nil
}

func (s *authService) generateAccessToken(identity shared.AuthClaims) (string, error) {
	now := s.now()
	claims := accessClaims{
		AuthClaims: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (*shared.AuthClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.HostelID == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return &claims.AuthClaims, nil
}
