package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := decodeFile(filePath, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadDeploymentPlan carrega o plano site-centric (serviço + configuração por site).
// Sites sem deployment_mode recebem ALL_PROFILES_AT_SITE.
func (r *ConfigRepositoryImpl) LoadDeploymentPlan(filePath string) (*entity.DeploymentPlan, error) {
	var plan entity.DeploymentPlan
	if err := decodeFile(filePath, &plan); err != nil {
		return nil, err
	}

	for i := range plan.Sites {
		mode := plan.Sites[i].DeploymentMode
		if mode == "" {
			mode = entity.DeployAllProfilesAtSite
		}
		plan.Sites[i].SetMode(mode)
		plan.Sites[i].Profiles = nil
	}

	if len(plan.Sites) == 0 {
		return nil, fmt.Errorf("deployment plan %s: %w", filePath, types.ErrNoSitesSelected)
	}

	return &plan, nil
}

func decodeFile(filePath string, out interface{}) error {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return nil
}
