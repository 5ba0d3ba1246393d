package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
	"foodcourt/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(username, password, role string) (*models.User, error)
	Login(username, password string) (*models.User, string, error)
	Authenticate(token string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) Register(username, password, role string) (*models.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	if role == "" {
		role = string(models.RoleCustomer)
	}
	if !models.ValidRole(role) {
		return nil, apperrors.Validation("invalid role")
	}

	// Check if user already exists
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, apperrors.Conflict("user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Unauthorized("invalid username or password")
		}
		return nil, "", apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("invalid username or password")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return user, token, nil
}

func (s *authService) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *authService) Authenticate(tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, apperrors.Unauthorized("missing token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token claims")
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token claims")
	}

	user, err := s.userRepo.GetByID(uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("user no longer exists")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func validateCredentials(username, password string) error {
	if len(username) < 3 {
		return apperrors.Validation("username must be at least 3 characters long")
	}
	for _, r := range username {
		if !isAlphanumeric(r) {
			return apperrors.Validation("username must contain only letters and numbers")
		}
	}
	if len(password) < 6 {
		return apperrors.Validation("password must be at least 6 characters long")
	}
	if !strings.ContainsAny(password, "0123456789") {
		return apperrors.Validation("password must contain at least one number")
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
