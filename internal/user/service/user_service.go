package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sakuraclothing/store-cli/internal/platform/logger"
	"github.com/sakuraclothing/store-cli/internal/user/domain"
	"github.com/sakuraclothing/store-cli/internal/user/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidRole        = errors.New("role must be admin or user")
	ErrInvalidInput       = errors.New("invalid user input")
)

var validate = validator.New()

// Format tanggal registrasi di file users.
const registeredLayout = "01/02/2006 03:04:05 PM"

type UserService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error)
	AddUser(ctx context.Context, req domain.AddUserRequest) (*domain.Account, error)
	ListUsers(ctx context.Context) ([]domain.Account, error)
}

type userServiceImpl struct {
	repo       repository.UserRepository
	bcryptCost int
	now        func() time.Time
}

func NewUserService(repo repository.UserRepository, bcryptCost int) UserService {
	return &userServiceImpl{repo: repo, bcryptCost: bcryptCost, now: time.Now}
}

// DefaultAdmin membangun akun admin seed untuk file users yang baru dibuat.
func DefaultAdmin(bcryptCost int) (domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcryptCost)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash default admin password: %w", err)
	}
	return domain.Account{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}, nil
}

// Register membuat akun role "user" dan langsung mem-persist-nya.
func (s *userServiceImpl) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Account, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	acct, err := s.createAccount(ctx, req.Username, req.Password, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	logger.Info("user %q registered", acct.Username)
	return acct, nil
}

func (s *userServiceImpl) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	req.Username = strings.TrimSpace(req.Username)

	acct, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Login: failed to load account", err)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:       uuid.NewString(),
		Username: acct.Username,
		Role:     acct.Role,
	}
	logger.Info("session %s opened for %q (%s)", session.ID, session.Username, session.Role)
	return session, nil
}

// AddUser adalah jalur admin: sama seperti register tapi role dipilih.
func (s *userServiceImpl) AddUser(ctx context.Context, req domain.AddUserRequest) (*domain.Account, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))

	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				if fe.Field() == "Role" {
					return nil, ErrInvalidRole
				}
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	acct, err := s.createAccount(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	logger.Info("user %q added with role %q", acct.Username, acct.Role)
	return acct, nil
}

func (s *userServiceImpl) createAccount(ctx context.Context, username, password, role string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Error("createAccount: failed to hash password", err)
		return nil, fmt.Errorf("could not process account: %w", err)
	}

	acct := domain.Account{
		Username:       username,
		PasswordHash:   string(hash),
		Role:           role,
		RegisteredDate: s.now().Format(registeredLayout),
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Error("createAccount: failed to create user in repo", err)
		return nil, fmt.Errorf("could not save user: %w", err)
	}
	return &acct, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}
