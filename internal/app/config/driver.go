package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	// MongoDB prefers URI when set. Report writes run in transactions, so the
	// server must be a replica set.
	MongoDB struct {
		URI                     string
		Port                    string
		Host                    string
		Username                string
		Password                string
		DbName                  string
		ReplicaSet              string
		ConnectTimeoutInSeconds int
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		VHost    string
	}
	// Minio is only dialed when the storage driver is minio.
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
