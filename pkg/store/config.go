package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the planner keeps its data.
type Config interface {
	BasePath() string
}

// LoadConfig reads an optional .studyplan config file and the STUDYPLAN_*
// environment, falling back to ~/.studyplan.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studyplan.db")
	viper.SetConfigName(".studyplan") // .yaml is implicit
	viper.SetEnvPrefix("STUDYPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDYPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
