package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectRecord is the table row of a showcase project. Position keeps the
// collection order (0 is the newest project). ID is not unique: timestamp ids
// may collide, so rows are keyed by RowID.
type ProjectRecord struct {
	RowID             uint            `gorm:"primarykey" json:"-"`
	ID                string          `gorm:"size:64;index;not null" json:"id"`
	Position          int             `gorm:"index;not null" json:"position"`
	Title             string          `gorm:"not null" json:"title"`
	Author            string          `gorm:"not null" json:"author"`
	Description       string          `gorm:"type:text" json:"description"`
	Model             string          `gorm:"size:128" json:"model"`
	Temperature       float64         `json:"temperature"`
	TopP              float64         `json:"top_p"`
	TopK              int             `json:"top_k"`
	SystemInstruction string          `gorm:"type:text" json:"system_instruction"`
	Prompt            string          `gorm:"type:text" json:"prompt"`
	Output            string          `gorm:"type:text" json:"output"`
	Tags              datatypes.JSON  `json:"tags"`
	Comments          []CommentRecord `gorm:"foreignKey:ProjectRowID;constraint:OnDelete:CASCADE" json:"comments"`
}

func (ProjectRecord) TableName() string { return "projects" }

// CommentRecord is one comment row; Position is the append order within its project.
type CommentRecord struct {
	RowID        uint   `gorm:"primarykey" json:"-"`
	ID           string `gorm:"size:64;not null" json:"id"`
	ProjectRowID uint   `gorm:"index;not null" json:"-"`
	Position     int    `gorm:"not null" json:"position"`
	Author       string `json:"author"`
	Text         string `gorm:"type:text" json:"text"`
	Date         string `gorm:"size:16" json:"date"`
}

func (CommentRecord) TableName() string { return "project_comments" }

// CollectionState marks that the collection has been saved at least once, so an
// empty saved collection is told apart from a first run.
type CollectionState struct {
	Name     string    `gorm:"primarykey;size:64"`
	SavedAt  time.Time `gorm:"not null"`
	Revision int64     `gorm:"not null"`
}

func (CollectionState) TableName() string { return "collection_states" }
