package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"anoa.com/makanlist/internal/config"
	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/apperror"
)

type AuthService interface {
	Signup(input dto.SignupInput) (*dto.AuthResponse, error)
	Login(input dto.LoginInput) (*dto.AuthResponse, error)
	GoogleLogin() string
	GoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error)
}

type authService struct {
	store        *store.Store
	secret       string
	tokenTTL     time.Duration
	googleConfig *oauth2.Config
}

func NewAuthService(st *store.Store, cfg *config.Config) AuthService {
	googleConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &authService{
		store:        st,
		secret:       cfg.JWTSecret,
		tokenTTL:     time.Duration(cfg.JWTTTLMinutes) * time.Minute,
		googleConfig: googleConfig,
	}
}

func (s *authService) Signup(input dto.SignupInput) (*dto.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashed)

	user, err := s.store.CreateUser(store.CreateUserParams{
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		PasswordHash: &hash,
	})
	if err != nil {
		return nil, apperror.New(apperror.MapErrorToStatus(err), "username sudah digunakan", err)
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(input dto.LoginInput) (*dto.AuthResponse, error) {
	user := s.store.GetUserByUsername(input.Username)
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	return s.buildAuthResponse(user)
}

func (s *authService) GoogleLogin() string {
	return s.googleConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

func (s *authService) GoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error) {
	token, err := s.googleConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.New("failed to exchange token: " + err.Error())
	}

	client := s.googleConfig.Client(ctx, token)
	userInfoResp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, errors.New("failed to get user info: " + err.Error())
	}
	defer userInfoResp.Body.Close()

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	if err := json.NewDecoder(userInfoResp.Body).Decode(&googleUser); err != nil {
		return nil, errors.New("failed to decode user info: " + err.Error())
	}

	user := s.store.GetUserByExternalID(googleUser.ID)
	if user == nil {
		// First login with this Google account, register a new user.
		username := strings.Split(googleUser.Email, "@")[0]
		username = strings.ReplaceAll(username, " ", "_")
		if s.store.GetUserByUsername(username) != nil {
			username = username + "_" + uuid.New().String()[:4]
		}

		displayName := googleUser.Name
		if displayName == "" {
			displayName = username
		}

		user, err = s.store.CreateUser(store.CreateUserParams{
			Username:    username,
			DisplayName: displayName,
			Email:       googleUser.Email,
			AvatarURL:   &googleUser.Picture,
			ExternalID:  &googleUser.ID,
		})
		if err != nil {
			return nil, errors.New("failed to create user: " + err.Error())
		}
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        user,
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, int64, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(user.ID),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}
