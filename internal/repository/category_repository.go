package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tuniskill/internal/errors"
	"tuniskill/internal/model"
)

// CategoryRepository defines category persistence and tree queries.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindActive(ctx context.Context) ([]model.Category, error)
	FindRoots(ctx context.Context) ([]model.Category, error)
	FindChildren(ctx context.Context, parentID uint) ([]model.Category, error)
	Search(ctx context.Context, query string) ([]model.Category, error)
	Tree(ctx context.Context) ([]model.CategoryNode, error)
	WithCourseCount(ctx context.Context) ([]model.CategoryWithCount, error)
	FindPopular(ctx context.Context, limit int) ([]model.CategoryWithCount, error)
	SetParent(ctx context.Context, id uint, parentID *uint) error
	Count(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB, opts ...Option) CategoryRepository {
	o := buildOptions(opts)
	return &categoryRepository{db: db, now: o.now}
}

// Create inserts a category. A duplicate slug fails on the unique index.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	category.Stamp(r.now())
	return r.db.WithContext(ctx).Create(category).Error
}

// Update saves a category, refreshing updated_at.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	category.Touch(r.now())
	return r.db.WithContext(ctx).Save(category).Error
}

// FindByID finds a category by ID, active or not. Missing yields (nil, nil).
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &category, nil
}

// FindBySlug finds an active category by slug. Missing yields (nil, nil).
func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Scopes(active).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &category, nil
}

func sorted(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("name ASC")
}

// FindActive lists active categories by sort order then name.
func (r *categoryRepository) FindActive(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Scopes(active, sorted).Find(&categories).Error
	return categories, err
}

// FindRoots lists active categories without a parent.
func (r *categoryRepository) FindRoots(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Scopes(active, sorted).
		Where("parent_id IS NULL").
		Find(&categories).Error
	return categories, err
}

// FindChildren lists the active direct children of a category.
func (r *categoryRepository) FindChildren(ctx context.Context, parentID uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Scopes(active, sorted).
		Where("parent_id = ?", parentID).
		Find(&categories).Error
	return categories, err
}

// Search matches name or description by case-insensitive substring.
func (r *categoryRepository) Search(ctx context.Context, query string) ([]model.Category, error) {
	var categories []model.Category
	p := likePattern(r.db, query)
	err := r.db.WithContext(ctx).Scopes(active).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", p, p).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// Tree assembles the hierarchy from the root categories down. Each level's
// children are loaded with their own query.
func (r *categoryRepository) Tree(ctx context.Context) ([]model.CategoryNode, error) {
	roots, err := r.FindRoots(ctx)
	if err != nil {
		return nil, err
	}
	tree := make([]model.CategoryNode, 0, len(roots))
	for _, root := range roots {
		node, err := r.buildNode(ctx, root)
		if err != nil {
			return nil, err
		}
		tree = append(tree, node)
	}
	return tree, nil
}

func (r *categoryRepository) buildNode(ctx context.Context, category model.Category) (model.CategoryNode, error) {
	node := model.NodeFromCategory(category)
	children, err := r.FindChildren(ctx, category.ID)
	if err != nil {
		return node, err
	}
	for _, child := range children {
		childNode, err := r.buildNode(ctx, child)
		if err != nil {
			return node, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

func (r *categoryRepository) withCountQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Select("categories.*, COUNT(courses.id) AS course_count").
		Joins("LEFT JOIN courses ON courses.category = categories.name AND courses.is_active = ?", true).
		Where("categories.is_active = ?", true).
		Group("categories.id")
}

// WithCourseCount lists active categories with their active course counts.
func (r *categoryRepository) WithCourseCount(ctx context.Context) ([]model.CategoryWithCount, error) {
	var rows []model.CategoryWithCount
	err := r.withCountQuery(ctx).
		Order("categories.sort_order ASC").Order("categories.name ASC").
		Scan(&rows).Error
	return rows, err
}

// FindPopular lists categories that have courses, most courses first.
func (r *categoryRepository) FindPopular(ctx context.Context, limit int) ([]model.CategoryWithCount, error) {
	var rows []model.CategoryWithCount
	err := r.withCountQuery(ctx).
		Having("COUNT(courses.id) > 0").
		Order("course_count DESC").Order("categories.name ASC").
		Limit(limitOr(limit, DefaultPopularLimit)).
		Scan(&rows).Error
	return rows, err
}

// SetParent moves a category under parentID, or to the root when parentID is nil.
// It walks the ancestor chain of the new parent and refuses any move that
// would make the category its own ancestor.
func (r *categoryRepository) SetParent(ctx context.Context, id uint, parentID *uint) error {
	category, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.ErrCategoryNotFound
	}

	if parentID != nil {
		if *parentID == id {
			return errors.ErrCategoryCycle
		}
		visited := map[uint]struct{}{}
		cur := *parentID
		for {
			ancestor, err := r.FindByID(ctx, cur)
			if err != nil {
				return err
			}
			if ancestor == nil {
				if cur == *parentID {
					return errors.ErrCategoryNotFound
				}
				// dangling link above the new parent ends the chain
				break
			}
			if ancestor.ID == id {
				return errors.ErrCategoryCycle
			}
			if _, seen := visited[ancestor.ID]; seen {
				return errors.ErrCategoryCycle
			}
			visited[ancestor.ID] = struct{}{}
			if ancestor.ParentID == nil {
				break
			}
			cur = *ancestor.ParentID
		}
	}

	category.ParentID = parentID
	return r.Update(ctx, category)
}

// Count returns the number of category rows, active or not.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&n).Error
	return n, err
}
