package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/brain-splash/asset"
)

// DefaultScenePath is checked when no scene path is given
const DefaultScenePath = "brain-splash.yaml"

// LoadSceneAuto loads the scene with priority: customPath > DefaultScenePath > embedded
// File values override the embedded defaults key by key
func LoadSceneAuto(customPath string) (*Scene, error) {
	// Priority 1: Custom path from CLI or environment
	if customPath != "" {
		return LoadSceneFromPath(customPath)
	}

	// Priority 2: Default external scene
	if fileExists(DefaultScenePath) {
		return LoadSceneFromPath(DefaultScenePath)
	}

	// Priority 3: Embedded fallback
	return DefaultScene()
}

// DefaultScene parses the embedded scene
func DefaultScene() (*Scene, error) {
	var s Scene
	if err := decodeScene([]byte(asset.DefaultSceneConfig), &s); err != nil {
		return nil, fmt.Errorf("embedded scene: %w", err)
	}
	return &s, nil
}

// LoadSceneFromPath overlays a scene file onto the embedded defaults
func LoadSceneFromPath(path string) (*Scene, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("scene file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s, err := DefaultScene()
	if err != nil {
		return nil, err
	}
	if err := decodeScene(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := s.Settings().Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// decodeScene rejects unknown keys, an empty document changes nothing
func decodeScene(data []byte, s *Scene) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
