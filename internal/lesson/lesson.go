// Package lesson loads practice lessons, small named word lists that the
// CLI and the web frontend walk through cell by cell.
package lesson

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Lesson is one practice word list.
type Lesson struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Words       []string `yaml:"words" json:"words"`
}

// ReadLessons loads every *.yml / *.yaml file in dir, sorted by lesson
// name. A missing directory is not an error: lessons are optional.
func ReadLessons(dir string) ([]Lesson, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var lessons []Lesson
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}

		l, err := readYamlFile[Lesson](path)
		if err != nil {
			return fmt.Errorf("readYamlFile(%s) > %w", path, err)
		}
		if l.Name == "" {
			l.Name = strings.TrimSuffix(filepath.Base(path), ext)
		}
		lessons = append(lessons, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", dir, err)
	}

	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].Name < lessons[j].Name
	})
	return lessons, nil
}

// Find returns the lesson with the given name, case-insensitive.
func Find(lessons []Lesson, name string) (Lesson, bool) {
	for _, l := range lessons {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Lesson{}, false
}
