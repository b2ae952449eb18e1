package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/cache"
	"stockroom/internal/notify"
	"stockroom/internal/repository"
)

const (
	otpTitle   = "Login code"
	tokenType  = "bearer"
	defaultOTP = 6
)

// AuthOptions tunes the one-time code exchange.
type AuthOptions struct {
	JWTSecret  string
	TokenTTL   time.Duration
	OTPTTL     time.Duration
	OTPLength  int
	BcryptCost int
}

// Token is the result of a successful code exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Claims are carried by issued tokens. Subject is the phone number.
type Claims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// AuthService issues and redeems one-time login codes.
type AuthService interface {
	// RequestOTP stores a fresh code for the user and delivers it.
	RequestOTP(ctx context.Context, phone, companyID string) error

	// VerifyOTP redeems a code exactly once and returns a signed token.
	VerifyOTP(ctx context.Context, phone, code string) (*Token, error)

	// ParseToken validates a token issued by VerifyOTP.
	ParseToken(token string) (*Claims, error)
}

type authService struct {
	users  repository.UserRepository
	cache  cache.Cache
	sender notify.Sender
	clock  Clock
	opts   AuthOptions
	logger *zap.Logger
}

// NewAuthService constructs an AuthService. Zero options fall back to a
// 600 second code and token lifetime and six-digit codes.
func NewAuthService(users repository.UserRepository, c cache.Cache, sender notify.Sender, clock Clock, opts AuthOptions, logger *zap.Logger) AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 600 * time.Second
	}
	if opts.OTPTTL <= 0 {
		opts.OTPTTL = 600 * time.Second
	}
	if opts.OTPLength <= 0 {
		opts.OTPLength = defaultOTP
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{users: users, cache: c, sender: sender, clock: clock, opts: opts, logger: logger}
}

func (s *authService) RequestOTP(ctx context.Context, phone, companyID string) error {
	if phone == "" || companyID == "" {
		return badRequest("phone and company are required")
	}
	user, err := s.users.FindByPhoneInCompany(ctx, phone, companyID)
	if err != nil {
		return translate(err, "user")
	}
	if user.LoginBlocked(s.clock.Now()) {
		return fmt.Errorf("%w: login is deactivated", ErrForbidden)
	}

	code, err := generateCode(s.opts.OTPLength)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash code: %w", err)
	}
	if err := s.cache.SetWithExpiry(ctx, otpKey(phone), string(hash), s.opts.OTPTTL); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	if err := s.sender.Send(ctx, user.ID, otpTitle, "Your login code: "+code); err != nil {
		if _, delErr := s.cache.Delete(ctx, otpKey(phone)); delErr != nil {
			s.logger.Warn("drop undelivered code", zap.String("component", "auth"), zap.Error(delErr))
		}
		return fmt.Errorf("%w: code delivery failed", ErrUnauthorized)
	}
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, phone, code string) (*Token, error) {
	if phone == "" || code == "" {
		return nil, badRequest("phone and code are required")
	}
	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, translate(err, "user")
	}

	hash, err := s.cache.Get(ctx, otpKey(phone))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("read code", zap.String("component", "auth"), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: code expired or not requested", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		return nil, fmt.Errorf("%w: invalid code", ErrUnauthorized)
	}

	now := s.clock.Now()
	if user.LoginBlocked(now) {
		return nil, fmt.Errorf("%w: login is deactivated", ErrForbidden)
	}

	// The delete decides which of two concurrent redemptions wins.
	deleted, err := s.cache.Delete(ctx, otpKey(phone))
	if err != nil || !deleted {
		return nil, fmt.Errorf("%w: code already used", ErrUnauthorized)
	}

	claims := Claims{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Phone,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Token{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresIn:   int(s.opts.TokenTTL / time.Second),
	}, nil
}

func (s *authService) ParseToken(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.opts.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}
	return claims, nil
}

// generateCode returns n uniformly random decimal digits.
func generateCode(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteString(digit.String())
	}
	return b.String(), nil
}

func otpKey(phone string) string {
	return "otp:" + phone
}
