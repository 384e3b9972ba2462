package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	userRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

// Service handles account administration. Every operation is admin only.
type Service struct {
	userRepo   UserRepository
	bcryptCost int
	logger     Logger
}

// NewService creates the users service.
func NewService(userRepo UserRepository, bcryptCost int, logger Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Create provisions an account with an explicit role and membership.
// Unlike self-registration this can create manager and admin accounts.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating account email=%s by admin=%d", req.Email, req.RequesterID)

	if err := s.checkAdminAccess(req.Role, req.RequesterID, "Create"); err != nil {
		return nil, err
	}

	role, membership, err := validateAccountFields(req.FirstName, req.LastName, req.UserRole, req.Membership)
	if err != nil {
		s.logger.Warn("Create: invalid input for email=%s: %v", req.Email, err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		s.logger.Warn("Create: invalid email=%s", req.Email)
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		s.logger.Warn("Create: password too short for email=%s", req.Email)
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         role,
		Membership:   membership,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created account id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID fetches one account.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64, role domain.Role) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching account id=%d for user=%d", id, requesterID)

	// Members may read their own profile.
	if id != requesterID && role != domain.RoleAdmin && role != domain.RoleManager {
		s.logger.Warn("GetByID: access denied for user=%d to account id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: account id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for account id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// List searches accounts by free text over name and email.
func (s *Service) List(ctx context.Context, req *models.ListUsersRequest) (*models.UserListResponse, error) {
	s.logger.Info("List: searching accounts query=%q by admin=%d", req.Query, req.RequesterID)

	if err := s.checkAdminAccess(req.Role, req.RequesterID, "List"); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, strings.TrimSpace(req.Query))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d accounts", len(users))
	return models.FromDomainUserList(users), nil
}

// Update rewrites the mutable profile fields of an account.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating account id=%d by admin=%d", id, req.RequesterID)

	if err := s.checkAdminAccess(req.Role, req.RequesterID, "Update"); err != nil {
		return nil, err
	}

	role, membership, err := validateAccountFields(req.FirstName, req.LastName, req.UserRole, req.Membership)
	if err != nil {
		s.logger.Warn("Update: invalid input for account id=%d: %v", id, err)
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: account id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for account id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Phone = strings.TrimSpace(req.Phone)
	user.Role = role
	user.Membership = membership

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: account id=%d disappeared during update", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for account id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated account id=%d", id)
	return models.FromDomainUser(user), nil
}

// Delete removes an account. Accounts with reservation history are kept
// by the storage layer's foreign key restriction.
func (s *Service) Delete(ctx context.Context, id int64, requesterID int64, role domain.Role) error {
	s.logger.Info("Delete: deleting account id=%d by admin=%d", id, requesterID)

	if err := s.checkAdminAccess(role, requesterID, "Delete"); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: account id=%d not found", id)
			return ErrUserNotFound
		}
		if errors.Is(err, userRepo.ErrUserReferenced) {
			s.logger.Warn("Delete: account id=%d still has reservations", id)
			return ErrUserInUse
		}
		s.logger.Error("Delete: repository error for account id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted account id=%d", id)
	return nil
}

// Helpers

func (s *Service) checkAdminAccess(role domain.Role, requesterID int64, op string) error {
	if role != domain.RoleAdmin {
		s.logger.Warn("%s: user=%d is not an administrator", op, requesterID)
		return ErrAccessDenied
	}
	return nil
}

func validateAccountFields(firstName, lastName, role, membership string) (domain.Role, domain.MembershipStatus, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return "", "", fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	domainRole, err := models.ToDomainRole(role)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid role", ErrInvalidInput)
	}

	domainMembership, err := models.ToDomainMembership(membership)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid membership status", ErrInvalidInput)
	}

	return domainRole, domainMembership, nil
}
