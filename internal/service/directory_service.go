package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

// DirectoryService manages client companies, their accounts and contracts.
type DirectoryService struct {
	store      *state.Store
	logger     *zap.Logger
	bcryptCost int
}

// DirectoryDependencies bundles collaborators for directory service.
type DirectoryDependencies struct {
	Store      *state.Store
	Logger     *zap.Logger
	BcryptCost int
}

// UserUpdate carries the editable user fields. Nil fields are left untouched;
// a new password is hashed before it reaches the store.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{store: deps.Store, logger: nopLogger(deps.Logger), bcryptCost: deps.BcryptCost}
}

// Accounts lists every company with its clients and contracts.
func (s *DirectoryService) Accounts() []state.CompanyAccount {
	return state.CompanyAccounts(s.store.Snapshot())
}

// AddCompany registers a client company.
func (s *DirectoryService) AddCompany(name string) domain.Company {
	company := s.store.AddCompany(strings.TrimSpace(name))
	s.logger.Info("company added", zap.String("company_id", company.ID))
	return company
}

// AddUser creates a client account in an existing company.
func (s *DirectoryService) AddUser(companyID, name, email, password string) (domain.User, error) {
	if err := s.requireCompany(companyID); err != nil {
		return domain.User{}, err
	}
	email = strings.TrimSpace(email)
	if _, taken := s.store.UserByEmail(email); taken {
		return domain.User{}, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.User{}, apperrors.NewInternalError(err)
	}
	user := s.store.AddUser(companyID, strings.TrimSpace(name), email, hash)
	s.logger.Info("user added", zap.String("user_id", user.ID), zap.String("company_id", companyID))
	return user, nil
}

// UpdateUser applies update to a user. found is false for unknown ids.
func (s *DirectoryService) UpdateUser(userID string, update UserUpdate) (domain.User, bool, error) {
	current, ok := s.store.User(userID)
	if !ok {
		return domain.User{}, false, nil
	}
	patch := domain.UserPatch{Name: update.Name}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if other, taken := s.store.UserByEmail(email); taken && other.ID != current.ID {
			return domain.User{}, true, apperrors.NewConflict("email already registered", map[string]any{"email": email})
		}
		patch.Email = &email
	}
	if update.Password != nil {
		hash, err := auth.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			return domain.User{}, true, apperrors.NewInternalError(err)
		}
		patch.PasswordHash = &hash
	}
	user, found := s.store.UpdateUser(userID, patch)
	return user, found, nil
}

// AddContract attaches a service contract to an existing company.
func (s *DirectoryService) AddContract(companyID, serviceName, details string, expires time.Time) (domain.Contract, error) {
	if err := s.requireCompany(companyID); err != nil {
		return domain.Contract{}, err
	}
	contract := s.store.AddContract(companyID, strings.TrimSpace(serviceName), details, expires)
	s.logger.Info("contract added", zap.String("contract_id", contract.ID), zap.String("company_id", companyID))
	return contract, nil
}

// UpdateContract merges patch into a contract. found is false for unknown ids.
func (s *DirectoryService) UpdateContract(contractID string, patch domain.ContractPatch) (domain.Contract, bool) {
	return s.store.UpdateContract(contractID, patch)
}

func (s *DirectoryService) requireCompany(companyID string) error {
	if _, ok := state.FindCompany(s.store.Snapshot().Companies, companyID); !ok {
		return apperrors.NewNotFound("company", map[string]any{"id": companyID})
	}
	return nil
}
