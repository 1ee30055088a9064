package showcase

import (
	"aistudio-academy/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository stores projects and comments as rows. Save rewrites every row
// inside one transaction, so readers see either the old or the new collection.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates the collection tables.
func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&models.ProjectRecord{}, &models.CommentRecord{}, &models.CollectionState{})
}

func (r *GormRepository) Load(ctx context.Context) ([]models.Project, bool, error) {
	db := r.db.WithContext(ctx)

	var state models.CollectionState
	err := db.Where("name = ?", CollectionKey).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load collection state: %w", err)
	}

	var records []models.ProjectRecord
	err = db.
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		return nil, false, fmt.Errorf("load projects: %w", err)
	}

	projects := make([]models.Project, 0, len(records))
	for _, rec := range records {
		p, err := fromRecord(rec)
		if err != nil {
			return nil, false, err
		}
		projects = append(projects, p)
	}
	return projects, true, nil
}

func (r *GormRepository) Save(ctx context.Context, projects []models.Project) error {
	records := make([]models.ProjectRecord, 0, len(projects))
	for i, p := range projects {
		rec, err := toRecord(i, p)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CommentRecord{}).Error; err != nil {
			return fmt.Errorf("clear comments: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.ProjectRecord{}).Error; err != nil {
			return fmt.Errorf("clear projects: %w", err)
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("insert projects: %w", err)
			}
		}

		var state models.CollectionState
		if err := tx.Where("name = ?", CollectionKey).Limit(1).Find(&state).Error; err != nil {
			return fmt.Errorf("read collection state: %w", err)
		}
		state.Name = CollectionKey
		state.SavedAt = time.Now()
		state.Revision++
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&state).Error
	})
}

func toRecord(position int, p models.Project) (models.ProjectRecord, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	rawTags, err := json.Marshal(tags)
	if err != nil {
		return models.ProjectRecord{}, fmt.Errorf("encode tags of %s: %w", p.ID, err)
	}

	comments := make([]models.CommentRecord, 0, len(p.Comments))
	for i, c := range p.Comments {
		comments = append(comments, models.CommentRecord{
			ID:       c.ID,
			Position: i,
			Author:   c.Author,
			Text:     c.Text,
			Date:     c.Date,
		})
	}

	return models.ProjectRecord{
		ID:                p.ID,
		Position:          position,
		Title:             p.Title,
		Author:            p.Author,
		Description:       p.Description,
		Model:             p.Model,
		Temperature:       p.Config.Temperature,
		TopP:              p.Config.TopP,
		TopK:              p.Config.TopK,
		SystemInstruction: p.SystemInstruction,
		Prompt:            p.Prompt,
		Output:            p.Output,
		Tags:              datatypes.JSON(rawTags),
		Comments:          comments,
	}, nil
}

func fromRecord(rec models.ProjectRecord) (models.Project, error) {
	tags := []string{}
	if len(rec.Tags) > 0 {
		if err := json.Unmarshal(rec.Tags, &tags); err != nil {
			return models.Project{}, fmt.Errorf("decode tags of %s: %w", rec.ID, err)
		}
	}

	comments := make([]models.Comment, 0, len(rec.Comments))
	for _, c := range rec.Comments {
		comments = append(comments, models.Comment{ID: c.ID, Author: c.Author, Text: c.Text, Date: c.Date})
	}

	return models.Project{
		ID:          rec.ID,
		Title:       rec.Title,
		Author:      rec.Author,
		Description: rec.Description,
		Model:       rec.Model,
		Config: models.GenerationConfig{
			Temperature: rec.Temperature,
			TopP:        rec.TopP,
			TopK:        rec.TopK,
		},
		SystemInstruction: rec.SystemInstruction,
		Prompt:            rec.Prompt,
		Output:            rec.Output,
		Tags:              tags,
		Comments:          comments,
	}, nil
}
