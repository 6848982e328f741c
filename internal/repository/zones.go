package repository

import (
	"context"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func (r *Repository) CreateZone(zone *domain.Zone) error {
	query := `
		INSERT INTO zones (garden_id, name, description, width, length)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{zone.GardenID, zone.Name, zone.Description, zone.Width, zone.Length}
	dst := []any{&zone.ID, &zone.CreatedAt, &zone.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetZonesByGardenID(gardenID int64) ([]*domain.Zone, error) {
	query := `
		SELECT id, garden_id, name, description, width, length, created_at, version
		FROM zones
		WHERE garden_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, gardenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []*domain.Zone{}
	for rows.Next() {
		var zone domain.Zone
		dst := []any{
			&zone.ID,
			&zone.GardenID,
			&zone.Name,
			&zone.Description,
			&zone.Width,
			&zone.Length,
			&zone.CreatedAt,
			&zone.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		zones = append(zones, &zone)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func (r *Repository) GetZoneByID(id int64) (*domain.Zone, error) {
	query := `
		SELECT garden_id, name, description, width, length, created_at, version
		FROM zones
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	zone := &domain.Zone{
		ID: id,
	}

	dst := []any{
		&zone.GardenID,
		&zone.Name,
		&zone.Description,
		&zone.Width,
		&zone.Length,
		&zone.CreatedAt,
		&zone.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return zone, nil
}

func (r *Repository) UpdateZone(zone *domain.Zone) error {
	query := `
		UPDATE zones
		SET
			name = $1,
			description = $2,
			width = $3,
			length = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		zone.Name,
		zone.Description,
		zone.Width,
		zone.Length,
		zone.ID,
		zone.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&zone.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteZone(id int64) error {
	query := `
		DELETE FROM zones WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
