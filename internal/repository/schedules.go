package repository

import (
	"context"
	"time"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

// 排程条目的 ID 由内容决定，重复生成的条目直接忽略，
// 这样同样的排程请求写多少次都是幂等的
func (r *Repository) UpsertScheduleEntries(entries []*domain.ScheduleEntry) error {
	query := `
		INSERT INTO schedule_entries (
			id,
			plant_id,
			task_type,
			due_date,
			priority,
			completed,
			weather_dependent,
			temperature,
			humidity,
			rainfall,
			wind_speed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	for _, entry := range entries {
		params := []any{
			entry.ID,
			entry.PlantID,
			entry.TaskType,
			entry.DueDate,
			entry.Priority,
			entry.Completed,
			entry.WeatherDependent,
			entry.Snapshot.Temperature,
			entry.Snapshot.Humidity,
			entry.Snapshot.Rainfall,
			entry.Snapshot.WindSpeed,
		}
		if _, err := r.dbpool.ExecContext(ctx, query, params...); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetScheduleEntriesByPlantID(plantID int64) ([]*domain.ScheduleEntry, error) {
	query := `
		SELECT
			id,
			plant_id,
			task_type,
			due_date,
			priority,
			completed,
			completion_date,
			weather_dependent,
			temperature,
			humidity,
			rainfall,
			wind_speed
		FROM schedule_entries
		WHERE plant_id = $1
		ORDER BY due_date ASC, priority DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, plantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.ScheduleEntry{}
	for rows.Next() {
		var entry domain.ScheduleEntry
		dst := []any{
			&entry.ID,
			&entry.PlantID,
			&entry.TaskType,
			&entry.DueDate,
			&entry.Priority,
			&entry.Completed,
			&entry.CompletionDate,
			&entry.WeatherDependent,
			&entry.Snapshot.Temperature,
			&entry.Snapshot.Humidity,
			&entry.Snapshot.Rainfall,
			&entry.Snapshot.WindSpeed,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetScheduleEntryByID(id string) (*domain.ScheduleEntry, error) {
	query := `
		SELECT
			plant_id,
			task_type,
			due_date,
			priority,
			completed,
			completion_date,
			weather_dependent,
			temperature,
			humidity,
			rainfall,
			wind_speed
		FROM schedule_entries
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	entry := &domain.ScheduleEntry{
		ID: id,
	}

	dst := []any{
		&entry.PlantID,
		&entry.TaskType,
		&entry.DueDate,
		&entry.Priority,
		&entry.Completed,
		&entry.CompletionDate,
		&entry.WeatherDependent,
		&entry.Snapshot.Temperature,
		&entry.Snapshot.Humidity,
		&entry.Snapshot.Rainfall,
		&entry.Snapshot.WindSpeed,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repository) CompleteScheduleEntry(id string, completedAt time.Time) error {
	query := `
		UPDATE schedule_entries
		SET completed = TRUE, completion_date = $1
		WHERE id = $2
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var updatedID string
	if err := r.dbpool.QueryRowContext(ctx, query, completedAt, id).Scan(&updatedID); err != nil {
		return err
	}

	return nil
}

// 找出在指定时间窗口内到期、还没完成也还没提醒过的任务，
// 连同植物和花园的信息一起返回，供提醒任务组装通知
func (r *Repository) GetPendingDueTasks(until time.Time) ([]*domain.DueTask, error) {
	query := `
		SELECT
			e.id,
			g.name,
			p.name,
			g.owner_email,
			e.task_type,
			e.due_date,
			e.priority
		FROM schedule_entries e
		JOIN plants p ON p.id = e.plant_id
		JOIN zones z ON z.id = p.zone_id
		JOIN gardens g ON g.id = z.garden_id
		WHERE e.completed = FALSE
			AND e.notified_at IS NULL
			AND e.due_date <= $1
		ORDER BY e.due_date ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.DueTask{}
	for rows.Next() {
		var task domain.DueTask
		dst := []any{
			&task.EntryID,
			&task.GardenName,
			&task.PlantName,
			&task.OwnerEmail,
			&task.TaskType,
			&task.DueDate,
			&task.Priority,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *Repository) MarkScheduleEntryNotified(id string, notifiedAt time.Time) error {
	query := `
		UPDATE schedule_entries
		SET notified_at = $1
		WHERE id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, notifiedAt, id); err != nil {
		return err
	}

	return nil
}
