package middlewares

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/config"
	"healthrecords-service/internal/app/services/core/authz"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	Resolver       *authz.Resolver
	InternalConfig *config.InternalConfig
}
