package config

import (
	"os"
	"strconv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port            string
	ImportUploadDir string
	ImportWorkers   int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "9446",
		ImportUploadDir:  os.TempDir(),
		ImportWorkers:    1,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envPort := os.Getenv("PORT")
	envImportUploadDir := os.Getenv("IMPORT_UPLOAD_DIR")
	envImportWorkers := os.Getenv("IMPORT_WORKERS")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envImportUploadDir) != 0 {
		env.ImportUploadDir = envImportUploadDir
	}

	if len(envImportWorkers) != 0 {
		workers, err := strconv.Atoi(envImportWorkers)
		if err != nil {
			return nil, err
		}
		env.ImportWorkers = workers
	}

	return &env, nil
}
