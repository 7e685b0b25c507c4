package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chakravarthikakarla/imagify/internal/model"
	"github.com/chakravarthikakarla/imagify/internal/shared"
)

const tokenDuration = time.Hour * 24 * 30

// UserStorage описывает доступ к пользователям в БД
type UserStorage interface {
	CreateUser(ctx context.Context, user *model.User) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type UserService struct {
	storage   UserStorage
	jwtSecret []byte
}

func NewUserService(s UserStorage, jwtSecret []byte) *UserService {
	return &UserService{storage: s, jwtSecret: jwtSecret}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (string, *model.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, shared.ErrValidation
	}

	// Хешируем пароль
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	// Создаём пользователя в БД, уникальность email проверяет constraint
	u := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	id, err := s.storage.CreateUser(ctx, u)
	if err != nil {
		return "", nil, err
	}
	u.ID = id

	token, err := GenerateJWT(id, s.jwtSecret, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, shared.ErrValidation
	}

	u, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, shared.ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, s.jwtSecret, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *UserService) GetCredits(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.storage.GetUserByID(ctx, userID)
}

// --- JWT helper ---

func GenerateJWT(userID uuid.UUID, secret []byte, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenStr string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, shared.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, shared.ErrInvalidToken
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, shared.ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, shared.ErrInvalidToken
	}
	return userID, nil
}
