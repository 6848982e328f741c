package repository

import (
	"context"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func (r *Repository) CreatePlant(plant *domain.Plant) error {
	query := `
		INSERT INTO plants (
			zone_id,
			name,
			species,
			growth_stage,
			soil_condition,
			planted_at,
			required_area,
			needs_watering,
			needs_fertilizing,
			needs_pruning,
			needs_harvesting,
			needs_weeding
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		plant.ZoneID,
		plant.Name,
		plant.Species,
		plant.GrowthStage,
		plant.SoilCondition,
		plant.PlantedAt,
		plant.RequiredArea,
		plant.NeedsWatering,
		plant.NeedsFertilizing,
		plant.NeedsPruning,
		plant.NeedsHarvesting,
		plant.NeedsWeeding,
	}
	dst := []any{&plant.ID, &plant.CreatedAt, &plant.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPlantsByZoneID(zoneID int64) ([]*domain.Plant, error) {
	query := `
		SELECT
			id,
			zone_id,
			name,
			species,
			growth_stage,
			soil_condition,
			planted_at,
			required_area,
			needs_watering,
			needs_fertilizing,
			needs_pruning,
			needs_harvesting,
			needs_weeding,
			created_at,
			version
		FROM plants
		WHERE zone_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, zoneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plants := []*domain.Plant{}
	for rows.Next() {
		var plant domain.Plant
		dst := []any{
			&plant.ID,
			&plant.ZoneID,
			&plant.Name,
			&plant.Species,
			&plant.GrowthStage,
			&plant.SoilCondition,
			&plant.PlantedAt,
			&plant.RequiredArea,
			&plant.NeedsWatering,
			&plant.NeedsFertilizing,
			&plant.NeedsPruning,
			&plant.NeedsHarvesting,
			&plant.NeedsWeeding,
			&plant.CreatedAt,
			&plant.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		plants = append(plants, &plant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plants, nil
}

// 这是排程计算过程中唯一的外部查询，调用方（排程器）可能随时取消请求，
// 所以这个方法接受调用方的 context，查询超时叠加在它之上
func (r *Repository) GetPlantByID(ctx context.Context, id int64) (*domain.Plant, error) {
	query := `
		SELECT
			zone_id,
			name,
			species,
			growth_stage,
			soil_condition,
			planted_at,
			required_area,
			needs_watering,
			needs_fertilizing,
			needs_pruning,
			needs_harvesting,
			needs_weeding,
			created_at,
			version
		FROM plants
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	plant := &domain.Plant{
		ID: id,
	}

	dst := []any{
		&plant.ZoneID,
		&plant.Name,
		&plant.Species,
		&plant.GrowthStage,
		&plant.SoilCondition,
		&plant.PlantedAt,
		&plant.RequiredArea,
		&plant.NeedsWatering,
		&plant.NeedsFertilizing,
		&plant.NeedsPruning,
		&plant.NeedsHarvesting,
		&plant.NeedsWeeding,
		&plant.CreatedAt,
		&plant.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return plant, nil
}

func (r *Repository) UpdatePlant(plant *domain.Plant) error {
	query := `
		UPDATE plants
		SET
			name = $1,
			species = $2,
			growth_stage = $3,
			soil_condition = $4,
			required_area = $5,
			needs_watering = $6,
			needs_fertilizing = $7,
			needs_pruning = $8,
			needs_harvesting = $9,
			needs_weeding = $10,
			version = version + 1
		WHERE id = $11 AND version = $12
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		plant.Name,
		plant.Species,
		plant.GrowthStage,
		plant.SoilCondition,
		plant.RequiredArea,
		plant.NeedsWatering,
		plant.NeedsFertilizing,
		plant.NeedsPruning,
		plant.NeedsHarvesting,
		plant.NeedsWeeding,
		plant.ID,
		plant.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&plant.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePlant(id int64) error {
	query := `
		DELETE FROM plants WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
