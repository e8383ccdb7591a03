package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-cards/internal/adapter"
	"github.com/MKhiriev/go-user-cards/internal/config"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/internal/utils"
	"github.com/MKhiriev/go-user-cards/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(userAdapter adapter.RandomUserAdapter, batch config.Batch, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		UserService:    NewUserService(userAdapter, batch.Query(), utils.NewUUIDGenerator(), logger),
		AppInfoService: appInfo,
	}, nil
}
