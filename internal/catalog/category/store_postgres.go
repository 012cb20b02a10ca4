package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/database/schema"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(context context.Context, f Filter) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Description, schema.CatalogCategory.IconURL, schema.CatalogCategory.ImageURL,
		schema.CatalogCategory.IsFeatured, schema.CatalogCategory.IsBanner, schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.Table, schema.CatalogCategory.DeletedAt,
	)

	if f.FeaturedOnly {
		query += fmt.Sprintf(" AND %s = TRUE", schema.CatalogCategory.IsFeatured)
	}
	if f.BannerOnly {
		query += fmt.Sprintf(" AND %s = TRUE", schema.CatalogCategory.IsBanner)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", schema.CatalogCategory.SortOrder, schema.CatalogCategory.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconURL, &c.ImageURL,
			&c.IsFeatured, &c.IsBanner, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategory(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Description, schema.CatalogCategory.IconURL, schema.CatalogCategory.ImageURL,
		schema.CatalogCategory.IsFeatured, schema.CatalogCategory.IsBanner, schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID, schema.CatalogCategory.DeletedAt,
	)
	c := &Category{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconURL, &c.ImageURL,
		&c.IsFeatured, &c.IsBanner, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_category")
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Description, schema.CatalogCategory.IconURL, schema.CatalogCategory.ImageURL,
		schema.CatalogCategory.IsFeatured, schema.CatalogCategory.IsBanner, schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.Table, schema.CatalogCategory.Slug, schema.CatalogCategory.DeletedAt,
	)
	c := &Category{}

	err := repository.db.QueryRow(context, query, slug).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconURL, &c.ImageURL,
		&c.IsFeatured, &c.IsBanner, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_category_by_slug")
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	c.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Description, schema.CatalogCategory.IconURL, schema.CatalogCategory.ImageURL,
		schema.CatalogCategory.IsFeatured, schema.CatalogCategory.IsBanner, schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Slug, c.Description, c.IconURL, c.ImageURL,
		c.IsFeatured, c.IsBanner, c.SortOrder,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.Name, schema.CatalogCategory.Slug, schema.CatalogCategory.Description,
		schema.CatalogCategory.IconURL, schema.CatalogCategory.ImageURL, schema.CatalogCategory.IsFeatured,
		schema.CatalogCategory.IsBanner, schema.CatalogCategory.SortOrder, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.ID, schema.CatalogCategory.DeletedAt,
		schema.CatalogCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Slug, c.Description, c.IconURL, c.ImageURL,
		c.IsFeatured, c.IsBanner, c.SortOrder,
	).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CatalogCategory.Table, schema.CatalogCategory.DeletedAt,
		schema.CatalogCategory.ID, schema.CatalogCategory.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
