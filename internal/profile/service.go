package profile

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/agrimart/agrimart-backend/pkg/config"
	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/kv"
	"github.com/agrimart/agrimart-backend/pkg/logger"
)

// Profile is the signed-in user's display data.
type Profile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

var phonePattern = regexp.MustCompile(`^(\+91[ -]?)?[6-9]\d{9}$`)

// Service implements the demo login flow: the OTP is a fixed configured code
// and is never delivered anywhere. This is intentionally not authentication.
type Service interface {
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, code string) error
	Get(ctx context.Context) (Profile, error)
	Save(ctx context.Context, profile Profile) error
}

// ServiceParams groups dependencies for the profile service.
type ServiceParams struct {
	Store  kv.Store
	Key    string
	OTP    config.OTPConfig
	Logger *logger.Logger
}

type service struct {
	mu    sync.Mutex
	store kv.Store
	key   string
	code  string
	logg  *logger.Logger
}

// NewService builds a profile service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("profile store required")
	}
	if params.Key == "" {
		return nil, fmt.Errorf("profile key required")
	}
	return &service{
		store: params.Store,
		key:   params.Key,
		code:  params.OTP.Code,
		logg:  params.Logger,
	}, nil
}

// RequestOTP validates the phone number. No code is sent; the demo flow
// accepts only the configured code.
func (s *service) RequestOTP(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid phone number")
	}
	if s.logg != nil {
		s.logg.Info(ctx, "otp requested")
	}
	return nil
}

// VerifyOTP compares the submitted code against the configured one.
func (s *service) VerifyOTP(ctx context.Context, code string) error {
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(code)), []byte(s.code)) != 1 {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "incorrect otp")
	}
	return nil
}

// Get returns the stored profile, empty when never saved.
func (s *service) Get(ctx context.Context) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return Profile{}, nil
		}
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}

	var profile Profile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode profile")
	}
	return profile, nil
}

// Save persists the profile.
func (s *service) Save(ctx context.Context, profile Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !phonePattern.MatchString(strings.TrimSpace(profile.Phone)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid phone number")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(profile)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode profile")
	}
	if err := s.store.Set(ctx, s.key, string(payload)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist profile")
	}
	return nil
}
