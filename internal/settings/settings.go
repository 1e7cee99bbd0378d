package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
)

// Sensitive information is never kept in the project manifest; it is read
// from the environment (optionally loaded from a .env file).
const (
	MeshAPIKeyEnvVar    = "MESH_API_KEY"
	MeshNamespaceEnvVar = "MESH_NAMESPACE"
)

const loadEnvErrorMessage = "Not able to load configuration from .env file, skipping this optional step.\n" +
	"The CLI will read and verify individual environment variables (they MUST be exported).\n" +
	"If you want to use a .env file, check that the path passed via --env points at it.\n" +
	"If no --env flag is given, the default is a .env file found in the current working directory or any parent."

// Settings holds the resolved, non-interactive configuration for a run.
type Settings struct {
	ProjectRoot string
	EnvFile     string
	Namespace   string
}

// New loads settings from flags, the `.env` file and the system environment.
func New(logger *zerolog.Logger, v *viper.Viper) (*Settings, error) {
	envPath := v.GetString(Flags.CliEnvFile.Name)

	// The .env file is optional, so a load failure is only a debug message.
	if err := LoadEnv(envPath); err != nil {
		logger.Debug().Msg(loadEnvErrorMessage)
	}

	if err := BindEnv(v); err != nil {
		logger.Debug().Err(err).Msg("Not able to bind sensitive environment variables")
	}

	projectRoot := v.GetString(Flags.ProjectRoot.Name)
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("unable to determine working directory: %w", err)
		}
		projectRoot = cwd
	}

	return &Settings{
		ProjectRoot: projectRoot,
		EnvFile:     envPath,
		Namespace:   v.GetString(MeshNamespaceEnvVar),
	}, nil
}

func BindEnv(v *viper.Viper) error {
	envVars := []string{
		MeshAPIKeyEnvVar,
		MeshNamespaceEnvVar,
	}

	for _, variable := range envVars {
		if err := v.BindEnv(variable); err != nil {
			return fmt.Errorf("failed to bind environment variable: %s", variable)
		}
	}

	v.AutomaticEnv() // Ensure variables are picked up
	return nil
}

func LoadEnv(envPath string) error {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading file from %s: %w", envPath, err)
			}
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	foundEnvPath, err := findEnvFile(cwd, constants.DefaultEnvFileName)
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	if err := godotenv.Load(foundEnvPath); err != nil {
		return fmt.Errorf("error loading file from %s: %w", foundEnvPath, err)
	}
	return nil
}

func findEnvFile(startDir, fileName string) (string, error) {
	dir := startDir

	for {
		filePath := filepath.Join(dir, fileName)

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return filePath, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break // Reached the root directory.
		}
		dir = parentDir
	}
	return "", fmt.Errorf("file %s not found in any parent directory starting from %s", fileName, startDir)
}
