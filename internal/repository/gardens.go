package repository

import (
	"context"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func (r *Repository) CreateGarden(garden *domain.Garden) error {
	query := `
		INSERT INTO gardens (name, description, owner_email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{garden.Name, garden.Description, garden.OwnerEmail}
	dst := []any{&garden.ID, &garden.CreatedAt, &garden.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllGardens() ([]*domain.Garden, error) {
	query := `
		SELECT id, name, description, owner_email, created_at, version
		FROM gardens
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gardens := []*domain.Garden{}
	for rows.Next() {
		var garden domain.Garden
		dst := []any{
			&garden.ID,
			&garden.Name,
			&garden.Description,
			&garden.OwnerEmail,
			&garden.CreatedAt,
			&garden.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		gardens = append(gardens, &garden)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return gardens, nil
}

func (r *Repository) GetGardenByID(id int64) (*domain.Garden, error) {
	query := `
		SELECT name, description, owner_email, created_at, version
		FROM gardens
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	garden := &domain.Garden{
		ID: id,
	}

	dst := []any{
		&garden.Name,
		&garden.Description,
		&garden.OwnerEmail,
		&garden.CreatedAt,
		&garden.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return garden, nil
}

// 通过植物 ID 找到它所属的花园，用于在没有显式传入环境快照时读取该花园的最新环境数据
func (r *Repository) GetGardenByPlantID(plantID int64) (*domain.Garden, error) {
	query := `
		SELECT g.id, g.name, g.description, g.owner_email, g.created_at, g.version
		FROM gardens g
		JOIN zones z ON z.garden_id = g.id
		JOIN plants p ON p.zone_id = z.id
		WHERE p.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	garden := &domain.Garden{}

	dst := []any{
		&garden.ID,
		&garden.Name,
		&garden.Description,
		&garden.OwnerEmail,
		&garden.CreatedAt,
		&garden.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, plantID).Scan(dst...); err != nil {
		return nil, err
	}

	return garden, nil
}

func (r *Repository) UpdateGarden(garden *domain.Garden) error {
	query := `
		UPDATE gardens
		SET
			name = $1,
			description = $2,
			owner_email = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		garden.Name,
		garden.Description,
		garden.OwnerEmail,
		garden.ID,
		garden.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&garden.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGarden(id int64) error {
	query := `
		DELETE FROM gardens WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
