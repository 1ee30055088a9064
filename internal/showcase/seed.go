package showcase

import (
	"aistudio-academy/internal/models"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed returns a fresh copy of the bundled collection shown on first run.
func Seed() ([]models.Project, error) {
	var projects []models.Project
	if err := yaml.Unmarshal(seedYAML, &projects); err != nil {
		return nil, fmt.Errorf("parse seed collection: %w", err)
	}
	for i := range projects {
		if projects[i].Tags == nil {
			projects[i].Tags = []string{}
		}
		if projects[i].Comments == nil {
			projects[i].Comments = []models.Comment{}
		}
	}
	return projects, nil
}
