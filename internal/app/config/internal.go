package config

type InternalConfig struct {
	App     App        `mapstructure:"app"`
	JWT     AppJWT     `mapstructure:"jwt"`
	Storage AppStorage `mapstructure:"storage"`
	Events  AppEvents  `mapstructure:"events"`
	Report  AppReport  `mapstructure:"report"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	FrontendDomain             string `mapstructure:"frontend_domain"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// PublicDownloads serves attachment downloads without a bearer token.
	PublicDownloads bool `mapstructure:"public_downloads"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppStorage struct {
	Driver            string `mapstructure:"driver"`
	BucketName        string `mapstructure:"bucket_name"`
	MaxUploadSizeInMB int64  `mapstructure:"max_upload_size_in_mb"`
}

type AppEvents struct {
	ReportQueue string `mapstructure:"report_queue"`
}

type AppReport struct {
	LockExpirationInSeconds int `mapstructure:"lock_expiration_in_seconds"`
}
