package facet

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/database/schema"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListGroups(context context.Context) ([]*FacetGroup, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogFacetGroup.Slug, schema.CatalogFacetGroup.Name, schema.CatalogFacetGroup.CreatedAt,
		schema.CatalogFacetGroup.Table,
		schema.CatalogFacetGroup.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_facet_groups")
	}
	defer rows.Close()

	groups := make([]*FacetGroup, 0)
	for rows.Next() {
		group := &FacetGroup{}
		if err := rows.Scan(&group.Slug, &group.Name, &group.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_facet_group")
		}
		groups = append(groups, group)
	}

	return groups, nil
}

func (repository *PostgresRepository) GetGroup(context context.Context, groupSlug string) (*FacetGroup, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogFacetGroup.Slug, schema.CatalogFacetGroup.Name, schema.CatalogFacetGroup.CreatedAt,
		schema.CatalogFacetGroup.Table,
		schema.CatalogFacetGroup.Slug,
	)

	group := &FacetGroup{}
	err := repository.db.QueryRow(context, query, groupSlug).Scan(&group.Slug, &group.Name, &group.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_facet_group")
	}
	return group, nil
}

func (repository *PostgresRepository) CreateGroup(context context.Context, group *FacetGroup) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NOW()) RETURNING %s`,
		schema.CatalogFacetGroup.Table,
		schema.CatalogFacetGroup.Slug, schema.CatalogFacetGroup.Name, schema.CatalogFacetGroup.CreatedAt,
		schema.CatalogFacetGroup.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, group.Slug, group.Name).Scan(&group.CreatedAt)
	return dberr.Wrap(err, "create_facet_group")
}

// DeleteGroup removes the group row; memberships referencing it go with it
// through the ON DELETE CASCADE on catalog.categoryfacet.
func (repository *PostgresRepository) DeleteGroup(context context.Context, groupSlug string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogFacetGroup.Table, schema.CatalogFacetGroup.Slug,
	)

	cmd, err := repository.db.Exec(context, query, groupSlug)
	if err != nil {
		return dberr.Wrap(err, "delete_facet_group")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) GroupsForCategory(context context.Context, categoryID string) ([]*FacetGroup, error) {
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s
		FROM %s g
		JOIN %s cf ON cf.%s = g.%s
		WHERE cf.%s = $1
		ORDER BY g.%s ASC
	`,
		schema.CatalogFacetGroup.Slug, schema.CatalogFacetGroup.Name, schema.CatalogFacetGroup.CreatedAt,
		schema.CatalogFacetGroup.Table,
		schema.CatalogCategoryFacet.Table, schema.CatalogCategoryFacet.GroupSlug, schema.CatalogFacetGroup.Slug,
		schema.CatalogCategoryFacet.CategoryID,
		schema.CatalogFacetGroup.Name,
	)

	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "facet_groups_for_category")
	}
	defer rows.Close()

	groups := make([]*FacetGroup, 0)
	for rows.Next() {
		group := &FacetGroup{}
		if err := rows.Scan(&group.Slug, &group.Name, &group.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_facet_group")
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// CategoriesForGroup resolves a group to its live member categories.
// Soft-deleted categories are filtered out even while their junction rows remain.
func (repository *PostgresRepository) CategoriesForGroup(context context.Context, groupSlug string) ([]*CategorySummary, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s
		FROM %s c
		JOIN %s cf ON cf.%s = c.%s
		WHERE cf.%s = $1 AND c.%s IS NULL
		ORDER BY c.%s ASC, c.%s ASC
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Table,
		schema.CatalogCategoryFacet.Table, schema.CatalogCategoryFacet.CategoryID, schema.CatalogCategory.ID,
		schema.CatalogCategoryFacet.GroupSlug, schema.CatalogCategory.DeletedAt,
		schema.CatalogCategory.SortOrder, schema.CatalogCategory.Name,
	)

	rows, err := repository.db.Query(context, query, groupSlug)
	if err != nil {
		return nil, dberr.Wrap(err, "categories_for_facet_group")
	}
	defer rows.Close()

	categories := make([]*CategorySummary, 0)
	for rows.Next() {
		category := &CategorySummary{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_category_summary")
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (repository *PostgresRepository) AllCategoryGroups(context context.Context) (map[string][]string, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CatalogCategoryFacet.CategoryID, schema.CatalogCategoryFacet.GroupSlug,
		schema.CatalogCategoryFacet.Table,
		schema.CatalogCategoryFacet.CategoryID, schema.CatalogCategoryFacet.GroupSlug,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "all_category_facet_groups")
	}
	defer rows.Close()

	mapping := make(map[string][]string)
	for rows.Next() {
		var categoryID, groupSlug string
		if err := rows.Scan(&categoryID, &groupSlug); err != nil {
			return nil, dberr.Wrap(err, "scan_category_facet_row")
		}
		mapping[categoryID] = append(mapping[categoryID], groupSlug)
	}

	return mapping, nil
}

/*
ReplaceCategoryGroups rewrites a category's junction rows inside one
transaction: delete everything for the category, then batch-insert the new
set. Any failure rolls back, so readers never observe a half-written state.
*/
func (repository *PostgresRepository) ReplaceCategoryGroups(context context.Context, categoryID string, groupSlugs []string) error {

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_replace_facets")
	}
	// Rollback is a no-op after a successful commit.
	defer transaction.Rollback(context)

	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.CatalogCategoryFacet.Table, schema.CatalogCategoryFacet.CategoryID,
	)
	if _, err := transaction.Exec(context, delQuery, categoryID); err != nil {
		return dberr.Wrap(err, "clear_category_facets")
	}

	if len(groupSlugs) > 0 {
		insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
			schema.CatalogCategoryFacet.Table,
			schema.CatalogCategoryFacet.CategoryID, schema.CatalogCategoryFacet.GroupSlug,
		)
		batch := &pgx.Batch{}
		for _, groupSlug := range groupSlugs {
			batch.Queue(insQuery, categoryID, groupSlug)
		}

		response := transaction.SendBatch(context, batch)
		if err := response.Close(); err != nil {
			return dberr.Wrap(err, "insert_category_facets")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_replace_facets")
	}
	return nil
}
