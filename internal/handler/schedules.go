package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
	"github.com/greenhaven-dev/garden-planner/backend/internal/scheduler"
)

func (h *Handler) GeneratePlantSchedule(w http.ResponseWriter, r *http.Request) {
	plant := r.Context().Value(PlantCtx).(*domain.Plant)

	var req struct {
		HorizonDays int32                         `json:"horizonDays" validate:"required,min=1"`
		Snapshot    *domain.EnvironmentalSnapshot `json:"snapshot"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.Snapshot != nil && (req.Snapshot.Humidity < 0 || req.Snapshot.Humidity > 100) {
		h.errorResponse(w, r, "湿度必须在 0 到 100 之间")
		return
	}

	// 请求里没有附带环境快照时，用植物所在花园最近一次上报的环境数据
	var snapshot domain.EnvironmentalSnapshot
	if req.Snapshot != nil {
		snapshot = *req.Snapshot
	} else {
		garden, err := h.repository.GetGardenByPlantID(plant.ID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFoundResponse(w, r, "植物所在花园不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		latest, err := h.latestReading(garden.ID)
		if err != nil {
			switch {
			case errors.Is(err, redis.Nil):
				h.errorResponse(w, r, "该花园暂无环境数据，请先提交环境数据或在请求中附带环境快照")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		snapshot = *latest
	}

	entries, err := h.scheduler.GenerateSchedule(r.Context(), plant.ID, req.HorizonDays, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrPlantNotFound):
			h.notFoundResponse(w, r, "植物不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.UpsertScheduleEntries(entries); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "生成养护排程成功", entries)
}

func (h *Handler) GetPlantScheduleEntries(w http.ResponseWriter, r *http.Request) {
	plant := r.Context().Value(PlantCtx).(*domain.Plant)

	entries, err := h.repository.GetScheduleEntriesByPlantID(plant.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取植物养护任务成功", entries)
}

func (h *Handler) GetScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ScheduleEntry)

	h.successResponse(w, r, "获取养护任务成功", entry)
}

func (h *Handler) CompleteScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(ScheduleEntryCtx).(*domain.ScheduleEntry)

	if entry.Completed {
		h.errorResponse(w, r, "该养护任务已完成")
		return
	}

	completedAt := time.Now()
	if err := h.repository.CompleteScheduleEntry(entry.ID, completedAt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "养护任务不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	entry.Completed = true
	entry.CompletionDate = &completedAt

	h.successResponse(w, r, "完成养护任务成功", entry)
}

// 用户手动调整任务到期时间后，用当前环境数据对任务重新打分
func (h *Handler) ScoreTaskPriority(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskType string                        `json:"taskType" validate:"required,oneof=WATERING FERTILIZING PRUNING HARVESTING WEEDING"`
		DueDate  time.Time                     `json:"dueDate" validate:"required"`
		Snapshot *domain.EnvironmentalSnapshot `json:"snapshot" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	priority := h.scheduler.ScoreTaskPriority(domain.TaskType(req.TaskType), req.DueDate, *req.Snapshot)

	h.successResponse(w, r, "计算任务优先级成功", map[string]int32{"priority": priority})
}
