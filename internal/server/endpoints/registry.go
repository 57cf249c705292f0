package endpoints

import (
	"github.com/jackzampolin/classgrid/internal/api"
)

// All returns all endpoint instances, in the order their commands appear.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Schedule endpoints
		&CreateScheduleEndpoint{},
		&GetScheduleEndpoint{},
		&ExportScheduleEndpoint{},
		&DeleteScheduleEndpoint{},
		&NormalizeEndpoint{},

		// Settings endpoints
		&ListSettingsEndpoint{},
		&GetSettingEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}
