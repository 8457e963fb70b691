package model

import "time"

// Category is a node of the course category tree. Parent links are plain ids;
// the tree is assembled by the repository.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ParentID    *uint     `json:"parentId,omitempty" gorm:"index"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Slug        string    `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Icon        *string   `json:"icon,omitempty" gorm:"size:255"`
	Color       *string   `json:"color,omitempty" gorm:"size:7"`
	IsActive    bool      `json:"isActive" gorm:"not null;index"`
	SortOrder   int       `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// TableName overrides the table name used by GORM.
func (Category) TableName() string {
	return "categories"
}

// NewCategory returns an active category with default sort order.
func NewCategory(name, slug string) *Category {
	return &Category{Name: name, Slug: slug, IsActive: true}
}

// Stamp sets both timestamps for a row about to be inserted.
func (c *Category) Stamp(now time.Time) {
	c.CreatedAt = now
	c.UpdatedAt = now
}

// Touch refreshes the update timestamp. Every mutation path calls it.
func (c *Category) Touch(now time.Time) {
	c.UpdatedAt = now
}

// CategoryNode is one level of the assembled category tree.
type CategoryNode struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description"`
	Icon        *string        `json:"icon"`
	Color       *string        `json:"color"`
	SortOrder   int            `json:"sortOrder"`
	Children    []CategoryNode `json:"children"`
}

// NodeFromCategory copies the public fields of c into a node with no children.
func NodeFromCategory(c Category) CategoryNode {
	return CategoryNode{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		Children:    []CategoryNode{},
	}
}

// CategoryWithCount pairs a category with the number of active courses
// whose category string equals the category name.
type CategoryWithCount struct {
	Category    `gorm:"embedded"`
	CourseCount int64 `json:"courseCount"`
}
