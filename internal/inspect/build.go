package inspect

import (
	"context"
	"os"
	"os/user"
	"time"

	"github.com/MKhiriev/go-repo-info/internal/config"
	"github.com/MKhiriev/go-repo-info/internal/logger"
	"github.com/MKhiriev/go-repo-info/models"
)

// BuildInspector determines who is performing the build and when.
type BuildInspector struct {
	configuredUser string

	// now is the clock source; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewBuildInspector constructs a [BuildInspector] from the build
// configuration.
func NewBuildInspector(cfg config.Build, logger *logger.Logger) *BuildInspector {
	return &BuildInspector{
		configuredUser: cfg.User,
		now:            time.Now,
		logger:         logger,
	}
}

// CollectBuildIdentity returns the identity credited for the build and the
// generation-time timestamp in [models.TimeLayout] format.
//
// The identity comes from configuration when present. Otherwise it is
// synthesized from the OS account and hostname as "user <user@host>"; only
// when even that fails does it degrade to [models.Unknown].
func (i *BuildInspector) CollectBuildIdentity(_ context.Context) models.BuildIdentity {
	return models.BuildIdentity{
		User: i.buildUser(),
		Time: i.now().Format(models.TimeLayout),
	}
}

func (i *BuildInspector) buildUser() string {
	if i.configuredUser != "" {
		return i.configuredUser
	}

	current, err := user.Current()
	if err != nil {
		i.logger.Warn().Err(err).Msg("no configured build user and no OS account, using placeholder")
		return models.Unknown
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	return current.Username + " <" + current.Username + "@" + host + ">"
}
