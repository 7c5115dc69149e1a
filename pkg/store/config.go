package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything the store and the ingestion client need to
// come up: where the blobs live and how to reach the AI backend.
type Config interface {
	BasePath() string
	APIKey() string
	Model() string
}

// LoadConfig discovers configuration from a .worldtree file in the
// working directory (or WORLDTREE_CONFIG_PATH), with environment
// overrides under the WORLDTREE prefix.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.worldtree.db")
	viper.SetDefault("model", "gemini-2.5-flash")
	viper.SetConfigName(".worldtree") // .yaml is implicit
	viper.SetEnvPrefix("WORLDTREE")
	viper.AutomaticEnv()

	if override := os.Getenv("WORLDTREE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &fileConfig{
		Path:      viper.GetString("path"),
		Key:       apiKey,
		ModelName: viper.GetString("model"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	Key       string `json:"api-key"`
	ModelName string `json:"model"`
}

func (f *fileConfig) BasePath() string {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return expanded
}

func (f *fileConfig) APIKey() string {
	return f.Key
}

func (f *fileConfig) Model() string {
	return f.ModelName
}
