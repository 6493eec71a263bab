package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-tracker/internal/crypto"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/internal/validators"
	"github.com/MKhiriev/go-budget-tracker/models"
)

// dummyPassword is hashed once at startup. Login verifies against its hash
// when the username is unknown so both failure paths cost one bcrypt compare.
const dummyPassword = "budget-tracker-timing-equalizer"

// authService is the concrete implementation of AuthService.
// Its only long-lived state is immutable after construction, so it is safe
// for concurrent use.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         crypto.TokenManager
	validator      validators.Validator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and validating tokens.
	now func() time.Time

	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The hasher and token manager are
// injected so the signing secret never leaves the crypto package.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenManager,
	tokenDuration time.Duration,
	logger *logger.Logger,
) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validators.NewUserValidator(),
		tokenDuration:  tokenDuration,
		now:            time.Now,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the request fails validation.
//   - ErrDuplicateUser wrapping store.ErrUsernameTaken or store.ErrEmailTaken.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("username", request.Username).Msg("username or email already taken")
			return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateUser, err)
		}
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user and issues a token whose subject is
// the username.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		a.hasher.Verify(request.Password, a.dummyHash)
		log.Info().Msg("login failed")
		return models.Token{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, foundUser.PasswordHash) {
		log.Info().Msg("login failed")
		return models.Token{}, ErrInvalidCredentials
	}

	now := a.now()
	signed, err := a.tokens.Issue(foundUser.Username, now, a.tokenDuration)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Int64("user_id", foundUser.UserID).Msg("user logged in")
	return models.Token{
		SignedString: signed,
		Subject:      foundUser.Username,
		ExpiresAt:    now.Add(a.tokenDuration),
	}, nil
}

// Resolve validates token and loads the user named by its subject.
// The concrete token failure is logged at debug level only.
func (a *authService) Resolve(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	subject, err := a.tokens.Validate(token, a.now())
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, subject)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Msg("token subject no longer exists")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case err != nil:
		log.Err(err).Msg("user search by token subject failed")
		return models.User{}, fmt.Errorf("user search by token subject failed: %w", err)
	}

	return user, nil
}

func (a *authService) AuthorizeOwner(principal models.User, ownerID int64) error {
	if principal.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}
