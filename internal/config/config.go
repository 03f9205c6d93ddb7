package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-required:"true" env-default:"production"`
	PGSQL      PQSQL      `yaml:"pgsql" env-required:"true"`
	Redis      Redis      `yaml:"redis" env-required:"true"`
	HTTPServer HTTPServer `yaml:"http_server" env-required:"true"`
	Uploads    Uploads    `yaml:"uploads" env-required:"true"`
	MinIO      MinIO      `yaml:"minio"`
	JWTSecret  string     `yaml:"jwt_secret" env-required:"true" env-default:"super_secret_key"`
}

type HTTPServer struct {
	Address string `yaml:"address" env-required:"true" env-default:"localhost:8080"`
}

type PQSQL struct {
	Host     string `yaml:"host" env-required:"true" env-default:"localhost"`
	Port     string `yaml:"port" env-required:"true" env-default:"5432"`
	User     string `yaml:"user" env-required:"true" env-default:"postgres"`
	Password string `yaml:"password" env-required:"true" env-default:"password"`
	DBName   string `yaml:"dbname" env-required:"true" env-default:"center_content_db"`
	SSLMode  string `yaml:"sslmode" env-required:"true" env-default:"disable"`
}

type Redis struct {
	Address  string `yaml:"address" env-default:"localhost:6379"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" env-default:"0"`
}

// Uploads configures the file-ingestion pipeline. Ceilings are in bytes.
type Uploads struct {
	// Backend selects where assembled payloads are persisted:
	// "local" for the on-disk store, "minio" for the object store.
	Backend string `yaml:"backend" env-default:"local"`
	// Root directory for the local store; category directories
	// (videos, images, raw-images, simple-images) live under it.
	Dir string `yaml:"dir" env-default:"./uploads"`
	// PublicBase is the URL prefix under which the local store is served.
	PublicBase string `yaml:"public_base" env-default:"/uploads"`
	// TempDir holds in-flight multipart spool files.
	TempDir string `yaml:"temp_dir" env-default:"./uploads/tmp"`

	MaxVideoBytes      int64 `yaml:"max_video_bytes" env-default:"209715200"`
	MaxLargeVideoBytes int64 `yaml:"max_large_video_bytes" env-default:"262144000"`
	MaxXLVideoBytes    int64 `yaml:"max_xl_video_bytes" env-default:"314572800"`
	MaxImageBytes      int64 `yaml:"max_image_bytes" env-default:"10485760"`
	MaxCSVBytes        int64 `yaml:"max_csv_bytes" env-default:"52428800"`

	// TimeoutSeconds bounds a single upload request wall-clock.
	TimeoutSeconds int `yaml:"timeout_seconds" env-default:"600"`
	// SessionTTLSeconds evicts abandoned chunk sessions.
	SessionTTLSeconds int `yaml:"session_ttl_seconds" env-default:"3600"`
}

type MinIO struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	BucketName      string `yaml:"bucket_name" env-default:"center-uploads"`
	UseSSL          bool   `yaml:"use_ssl"`
}

func MustLoad() *Config {
	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to config file")
		flag.Parse()
		configPath = *flags

		if configPath == "" {
			log.Fatal("config path must be provided")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist at path: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("failed to read config: %s", err)
	}

	return &cfg
}
