package service

import (
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/crypto"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
)

type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

// NewServices wires the services. It fails when the token signing key is
// missing, which must stop the server from starting.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	tokens, err := crypto.NewTokenManager(cfg.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("error creating token manager: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(cfg.PasswordHashCost), tokens, cfg.TokenDuration, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        authService,
		TransactionService: NewTransactionService(storages.TransactionRepository, authService, logger),
		AppInfoService:     appInfoService,
	}, nil
}
