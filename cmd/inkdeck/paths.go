package main

import (
	"os"
	"path/filepath"
)

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "inkdeck", "showcase.yaml"), nil
}

func defaultThemeStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "inkdeck", "theme.json"), nil
}

func defaultContentDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "inkdeck", "content"), nil
}
