package flags

import (
	"context"
	"strconv"

	"github.com/carpentries/mailflow/pkg/cache"
	"github.com/carpentries/mailflow/pkg/logger"
)

const emailModuleKey = "flags:email_module"

// FeatureFlags exposes the boolean gates checked by the email action
// receivers. Defaults come from configuration at startup; an optional Redis
// override lets operators flip a flag without a redeploy.
type FeatureFlags struct {
	emailModule bool
	cache       *cache.Client
	log         logger.Logger
}

// New creates a FeatureFlags value from configuration defaults. The cache
// client is optional; pass nil to use configured values only.
func New(emailModule bool, cacheClient *cache.Client, log logger.Logger) *FeatureFlags {
	if log == nil {
		log = logger.Default()
	}
	return &FeatureFlags{
		emailModule: emailModule,
		cache:       cacheClient,
		log:         log,
	}
}

// EmailModule reports whether the email scheduling module is enabled. When
// disabled, every action receiver is a pure no-op.
func (f *FeatureFlags) EmailModule(ctx context.Context) bool {
	if f.cache == nil {
		return f.emailModule
	}

	value, err := f.cache.Get(ctx, emailModuleKey)
	if err != nil {
		// Missing key or unreachable Redis falls back to the configured value.
		return f.emailModule
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		f.log.Warn("unparsable feature flag override, using configured value",
			"key", emailModuleKey, "value", value)
		return f.emailModule
	}

	return enabled
}
