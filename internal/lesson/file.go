package lesson

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}

func WriteYamlFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(data)
}
