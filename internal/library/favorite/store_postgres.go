package favorite

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

func (repository *PostgresRepository) ListPlaceIDs(context context.Context, userID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		schema.LibraryFavorite.PlaceID, schema.LibraryFavorite.Table,
		schema.LibraryFavorite.UserID,
		schema.LibraryFavorite.CreatedAt, schema.LibraryFavorite.ID,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_favorite_ids")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_favorite_id")
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Add inserts the bookmark. A repeated add trips the (userid, placeid)
// unique constraint, which is translated into a no-op to keep the
// operation idempotent.
func (repository *PostgresRepository) Add(context context.Context, userID, placeID string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, NOW())`,
		schema.LibraryFavorite.Table,
		schema.LibraryFavorite.ID, schema.LibraryFavorite.UserID,
		schema.LibraryFavorite.PlaceID, schema.LibraryFavorite.CreatedAt,
	)

	_, err := repository.db.Exec(context, query, uuidv7.New(), userID, placeID)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil
		}
		return dberr.Wrap(err, "add_favorite")
	}
	return nil
}

// Remove deletes the bookmark. Zero affected rows is success: the caller
// wanted the bookmark gone and it already is.
func (repository *PostgresRepository) Remove(context context.Context, userID, placeID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryFavorite.Table,
		schema.LibraryFavorite.UserID, schema.LibraryFavorite.PlaceID,
	)

	_, err := repository.db.Exec(context, query, userID, placeID)
	return dberr.Wrap(err, "remove_favorite")
}
