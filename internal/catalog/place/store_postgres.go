package place

import (
	"context"
	"fmt"
	"strings"

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

// selectColumns is the shared projection for all place reads.
func selectColumns(alias string) string {
	cols := schema.CatalogPlace.Columns()
	// Drop the trailing deletedat column; it is only used in predicates.
	cols = cols[:len(cols)-1]

	prefixed := make([]string, len(cols))
	for i, c := range cols {
		prefixed[i] = alias + "." + c
	}
	return strings.Join(prefixed, ", ")
}

// scanPlace reads one row in the [selectColumns] order.
func scanPlace(row interface{ Scan(...any) error }) (*Place, error) {
	p := &Place{}
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Settlement,
		&p.Address, &p.Coordinate.Lat, &p.Coordinate.Lng, &p.Phone, &p.Website, &p.ImageURL,
		&p.Rating, &p.RatingCount, &p.IsOpen, &p.IsPremium, &p.PriceLevel,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

/*
ListPlaces returns a filtered, paginated slice of places plus the total count.

Key SQL Techniques:
  - Window Function: Uses COUNT(*) OVER() to retrieve the total record count
    without a second query.
  - Dynamic WHERE: Predicates are appended with positional arguments only
    when the corresponding filter field is set.
*/
func (repository *PostgresRepository) ListPlaces(context context.Context, filter Filter, limit, offset int) ([]*Place, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s p
		WHERE p.%s IS NULL
	`,
		selectColumns("p"),
		schema.CatalogPlace.Table,
		schema.CatalogPlace.DeletedAt,
	))

	// Apply Filters (Dynamic WHERE clause construction)
	if filter.CategoryID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.CatalogPlace.CategoryID, argID))
		args = append(args, filter.CategoryID)
		argID++
	}

	if filter.Settlement != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.CatalogPlace.Settlement, argID))
		args = append(args, filter.Settlement)
		argID++
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (p.%s ILIKE $%d OR p.%s ILIKE $%d)",
			schema.CatalogPlace.Name, argID, schema.CatalogPlace.Description, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.%s ASC, p.%s DESC", schema.CatalogPlace.Name, schema.CatalogPlace.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_places")
	}
	defer rows.Close()

	var total int
	places := make([]*Place, 0)
	for rows.Next() {
		p := &Place{}
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Settlement,
			&p.Address, &p.Coordinate.Lat, &p.Coordinate.Lng, &p.Phone, &p.Website, &p.ImageURL,
			&p.Rating, &p.RatingCount, &p.IsOpen, &p.IsPremium, &p.PriceLevel,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_place")
		}
		places = append(places, p)
	}

	return places, total, nil
}

func (repository *PostgresRepository) GetPlace(context context.Context, id string) (*Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1 AND p.%s IS NULL`,
		selectColumns("p"), schema.CatalogPlace.Table,
		schema.CatalogPlace.ID, schema.CatalogPlace.DeletedAt,
	)

	p, err := scanPlace(repository.db.QueryRow(context, query, id))
	return p, dberr.Wrap(err, "get_place")
}

func (repository *PostgresRepository) GetPlaceBySlug(context context.Context, slug string) (*Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1 AND p.%s IS NULL`,
		selectColumns("p"), schema.CatalogPlace.Table,
		schema.CatalogPlace.Slug, schema.CatalogPlace.DeletedAt,
	)

	p, err := scanPlace(repository.db.QueryRow(context, query, slug))
	return p, dberr.Wrap(err, "get_place_by_slug")
}

// FindByCategory returns every active place under a category.
// An unknown category yields an empty slice, not an error.
func (repository *PostgresRepository) FindByCategory(context context.Context, categoryID string) ([]*Place, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s p
		WHERE p.%s = $1 AND p.%s = TRUE AND p.%s IS NULL
		ORDER BY p.%s ASC
	`,
		selectColumns("p"), schema.CatalogPlace.Table,
		schema.CatalogPlace.CategoryID, schema.CatalogPlace.IsActive, schema.CatalogPlace.DeletedAt,
		schema.CatalogPlace.Name,
	)

	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "find_places_by_category")
	}
	defer rows.Close()

	places := make([]*Place, 0)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_place")
		}
		places = append(places, p)
	}

	return places, nil
}

// FindByIDs returns the active places matching the given identifiers.
// Missing identifiers are silently skipped; the result order is unspecified,
// callers that care (favorites hydration) re-order in memory.
func (repository *PostgresRepository) FindByIDs(context context.Context, ids []string) ([]*Place, error) {
	if len(ids) == 0 {
		return []*Place{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s p
		WHERE p.%s = ANY($1) AND p.%s IS NULL
	`,
		selectColumns("p"), schema.CatalogPlace.Table,
		schema.CatalogPlace.ID, schema.CatalogPlace.DeletedAt,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "find_places_by_ids")
	}
	defer rows.Close()

	places := make([]*Place, 0, len(ids))
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_place")
		}
		places = append(places, p)
	}

	return places, nil
}

func (repository *PostgresRepository) CreatePlace(context context.Context, p *Place) error {
	p.ID = uuidv7.New()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogPlace.Table,
		schema.CatalogPlace.ID, schema.CatalogPlace.CategoryID, schema.CatalogPlace.Name,
		schema.CatalogPlace.Slug, schema.CatalogPlace.Description, schema.CatalogPlace.Settlement,
		schema.CatalogPlace.Address, schema.CatalogPlace.Lat, schema.CatalogPlace.Lng,
		schema.CatalogPlace.Phone, schema.CatalogPlace.Website, schema.CatalogPlace.ImageURL,
		schema.CatalogPlace.RatingAvg, schema.CatalogPlace.RatingCount, schema.CatalogPlace.IsOpen,
		schema.CatalogPlace.IsPremium, schema.CatalogPlace.PriceLevel, schema.CatalogPlace.IsActive,
		schema.CatalogPlace.CreatedAt, schema.CatalogPlace.UpdatedAt,
		schema.CatalogPlace.CreatedAt, schema.CatalogPlace.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.CategoryID, p.Name, p.Slug, p.Description, p.Settlement,
		p.Address, p.Coordinate.Lat, p.Coordinate.Lng, p.Phone, p.Website, p.ImageURL,
		p.Rating, p.RatingCount, p.IsOpen, p.IsPremium, p.PriceLevel, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_place")
}

func (repository *PostgresRepository) UpdatePlace(context context.Context, p *Place) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CatalogPlace.Table,
		schema.CatalogPlace.CategoryID, schema.CatalogPlace.Name, schema.CatalogPlace.Slug,
		schema.CatalogPlace.Description, schema.CatalogPlace.Settlement, schema.CatalogPlace.Address,
		schema.CatalogPlace.Lat, schema.CatalogPlace.Lng, schema.CatalogPlace.Phone,
		schema.CatalogPlace.Website, schema.CatalogPlace.ImageURL, schema.CatalogPlace.IsOpen,
		schema.CatalogPlace.IsPremium, schema.CatalogPlace.PriceLevel, schema.CatalogPlace.IsActive,
		schema.CatalogPlace.UpdatedAt,
		schema.CatalogPlace.ID, schema.CatalogPlace.DeletedAt,
		schema.CatalogPlace.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.CategoryID, p.Name, p.Slug, p.Description, p.Settlement, p.Address,
		p.Coordinate.Lat, p.Coordinate.Lng, p.Phone, p.Website, p.ImageURL,
		p.IsOpen, p.IsPremium, p.PriceLevel, p.IsActive,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_place")
}

func (repository *PostgresRepository) DeletePlace(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CatalogPlace.Table, schema.CatalogPlace.DeletedAt,
		schema.CatalogPlace.ID, schema.CatalogPlace.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_place")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
