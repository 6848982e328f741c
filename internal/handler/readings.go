package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func readingKey(gardenID int64) string {
	return fmt.Sprintf("reading_garden_%d", gardenID)
}

// 记录花园的最新环境数据。
// 环境数据只用于参与排程计算，不需要长期保留，所以存在 redis 里并设置过期时间
func (h *Handler) SubmitEnvironmentalReading(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	var req struct {
		Temperature float64 `json:"temperature" validate:"min=-50,max=60"`
		Humidity    float64 `json:"humidity" validate:"min=0,max=100"`
		Rainfall    float64 `json:"rainfall" validate:"min=0"`
		WindSpeed   float64 `json:"windSpeed" validate:"min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	snapshot := domain.EnvironmentalSnapshot{
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Rainfall:    req.Rainfall,
		WindSpeed:   req.WindSpeed,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, readingKey(garden.ID), data, time.Duration(h.config.Redis.ReadingExpiration)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "环境数据已记录", snapshot)
}

func (h *Handler) GetLatestEnvironmentalReading(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	snapshot, err := h.latestReading(garden.ID)
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			h.successResponse(w, r, "该花园暂无环境数据", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取最新环境数据成功", snapshot)
}

func (h *Handler) latestReading(gardenID int64) (*domain.EnvironmentalSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	data, err := h.redisClient.Get(ctx, readingKey(gardenID)).Result()
	if err != nil {
		return nil, err
	}

	snapshot := &domain.EnvironmentalSnapshot{}
	if err := json.Unmarshal([]byte(data), snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}
