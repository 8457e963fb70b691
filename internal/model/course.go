package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	apperrors "tuniskill/internal/errors"
)

// Course levels used by convention; the column is free text.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

var maxRating = decimal.NewFromInt(5)

// Course is a catalog entry. Category holds the category name, not an id.
type Course struct {
	ID               uint                        `json:"id" gorm:"primaryKey"`
	Title            string                      `json:"title" gorm:"size:255;not null"`
	Description      string                      `json:"description" gorm:"type:text;not null"`
	Instructor       string                      `json:"instructor" gorm:"size:255;not null"`
	Price            decimal.Decimal             `json:"price" gorm:"type:decimal(10,2);not null"`
	Rating           decimal.Decimal             `json:"rating" gorm:"type:decimal(3,2);not null"`
	Students         int                         `json:"students" gorm:"not null"`
	Duration         string                      `json:"duration" gorm:"size:100;not null"`
	Level            string                      `json:"level" gorm:"size:50;not null;index"`
	Thumbnail        *string                     `json:"thumbnail,omitempty" gorm:"size:500"`
	Category         string                      `json:"category" gorm:"size:100;not null;index"`
	Tags             datatypes.JSONSlice[string] `json:"tags"`
	Requirements     *string                     `json:"requirements,omitempty" gorm:"type:text"`
	WhatYouWillLearn *string                     `json:"whatYouWillLearn,omitempty" gorm:"type:text"`
	Language         string                      `json:"language" gorm:"size:10;not null"`
	VideoPreviewURL  *string                     `json:"videoPreviewUrl,omitempty" gorm:"column:video_preview_url;size:255"`
	IsActive         bool                        `json:"isActive" gorm:"not null;index"`
	IsFeatured       bool                        `json:"isFeatured" gorm:"not null;index"`
	CreatedAt        time.Time                   `json:"createdAt" gorm:"autoCreateTime:false;index"`
	UpdatedAt        time.Time                   `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// TableName overrides the table name used by GORM.
func (Course) TableName() string {
	return "courses"
}

// NewCourse returns a course in its initial lifecycle state: active, not
// featured, no students, rating 0.00 and no tags.
func NewCourse() *Course {
	return &Course{
		IsActive:   true,
		IsFeatured: false,
		Students:   0,
		Rating:     decimal.RequireFromString("0.00"),
		Price:      decimal.Zero,
		Tags:       datatypes.JSONSlice[string]{},
		Language:   "en",
	}
}

// Stamp sets both timestamps for a row about to be inserted.
func (c *Course) Stamp(now time.Time) {
	c.CreatedAt = now
	c.UpdatedAt = now
}

// Touch refreshes the update timestamp. Every mutation path calls it.
func (c *Course) Touch(now time.Time) {
	c.UpdatedAt = now
}

// Validate checks the numeric ranges the schema cannot express.
func (c *Course) Validate() error {
	if c.Price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", apperrors.ErrInvalidCourse, c.Price.StringFixed(2))
	}
	if c.Rating.IsNegative() || c.Rating.GreaterThan(maxRating) {
		return fmt.Errorf("%w: rating %s outside 0.00-5.00", apperrors.ErrInvalidCourse, c.Rating.StringFixed(2))
	}
	if c.Students < 0 {
		return fmt.Errorf("%w: students %d is negative", apperrors.ErrInvalidCourse, c.Students)
	}
	return nil
}

// CourseStats is the aggregate row over active courses.
type CourseStats struct {
	TotalCourses  int64   `json:"totalCourses"`
	AverageRating float64 `json:"averageRating"`
	TotalStudents int64   `json:"totalStudents"`
}
