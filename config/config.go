package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mediacore/internal/domain/model"
	"mediacore/internal/infrastructure/broker"
	"mediacore/internal/infrastructure/database"
	"mediacore/internal/infrastructure/imaging"
	"mediacore/internal/infrastructure/minio"
	"mediacore/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	MinIOLister     minio.ListerConfig     `yaml:"minio_lister"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Imaging         imaging.Config         `yaml:"imaging"`
	Upload          UploadConfig           `yaml:"upload"`
	References      model.ReferenceMap     `yaml:"references"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

type UploadConfig struct {
	// MaxBytes is the upload size ceiling, enforced before any storage
	// write begins.
	MaxBytes int64 `yaml:"max_bytes"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.MinIOClient.Bucket == "" {
		return Error{reason: "minio_client.bucket is required"}
	}

	for collection, fields := range c.References {
		for _, field := range fields {
			if field.Field == "" {
				return Error{reason: "references." + collection + " has a field with no name"}
			}
			if field.Shape != model.ShapeSingle && field.Shape != model.ShapeList {
				return Error{reason: "references." + collection + "." + field.Field +
					" has invalid shape " + field.Shape}
			}
		}
	}

	return nil
}
