package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	userRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
)

// Service handles registration and login.
type Service struct {
	users      UserRepository
	tokens     *TokenManager
	bcryptCost int
	logger     Logger
}

// NewService creates the auth service.
func NewService(users UserRepository, tokens *TokenManager, bcryptCost int, logger Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a member account and signs the caller in.
// Self-registered accounts always start with the member role; elevated
// roles are granted through the users administration endpoints.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	s.logger.Info("Register: creating account for email=%s", req.Email)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: invalid input for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	membership := domain.MembershipStatus(req.Membership)
	if req.Membership == "" {
		membership = domain.MemberStaff
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		Membership:   membership,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, expiresAt, err := s.tokens.Issue(created)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully created account id=%d", created.ID)
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      FromDomainUser(created),
	}, nil
}

// Login verifies the credential pair and issues a token. Unknown email and
// wrong password both map to ErrInvalidCredentials so the response does
// not reveal whether an account exists.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: no account for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%d signed in", user.ID)
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      FromDomainUser(user),
	}, nil
}

func validateRegisterRequest(req *RegisterRequest) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if req.Membership != "" && !domain.ValidMembershipStatus(domain.MembershipStatus(req.Membership)) {
		return fmt.Errorf("%w: invalid membership status", ErrInvalidInput)
	}
	return nil
}
