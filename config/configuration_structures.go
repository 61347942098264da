package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	AccessTokenTTL string `yaml:"access_token_ttl"`
}

type TTL struct {
	// S3AndRedis : время жизни в секундах для pre-signed URL и записей в кэше
	S3AndRedis int `yaml:"s3AndRedis"`
}

type UploadConfig struct {
	// MaxSizeBytes : максимальный размер загружаемого файла отчёта
	MaxSizeBytes int64 `yaml:"max_size_bytes"`
}
