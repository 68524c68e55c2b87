package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rtiworkbench/rti-cli/internal/models"
)

// GetBackendBaseURL returns the configured backend origin
func GetBackendBaseURL() string {
	return viper.GetString("backend.base_url")
}

// GetWorkspaceDir returns the directory holding the case snapshot and lock.
// An unset value resolves to $HOME/.config/rti.
func GetWorkspaceDir() string {
	if dir := viper.GetString("workspace.dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".rti")
	}
	return filepath.Join(home, ".config", "rti")
}

// GetDownloadDir returns where downloaded submissions are saved
func GetDownloadDir() string {
	return viper.GetString("download.dir")
}

// GetDefaultLanguage returns the configured default draft language
func GetDefaultLanguage() models.Language {
	lang, err := models.ParseLanguage(viper.GetString("draft.language"))
	if err != nil {
		return models.LanguageEnglish
	}
	return lang
}
