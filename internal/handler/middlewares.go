package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) garden(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gardenIDParam := chi.URLParam(r, "id")
		gardenID, err := strconv.ParseInt(gardenIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "花园ID无效")
			return
		}

		garden, err := h.repository.GetGardenByID(gardenID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFoundResponse(w, r, "花园不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), GardenCtx, garden)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) zone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zoneIDParam := chi.URLParam(r, "id")
		zoneID, err := strconv.ParseInt(zoneIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "区域ID无效")
			return
		}

		zone, err := h.repository.GetZoneByID(zoneID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFoundResponse(w, r, "区域不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ZoneCtx, zone)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) plant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plantIDParam := chi.URLParam(r, "id")
		plantID, err := strconv.ParseInt(plantIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "植物ID无效")
			return
		}

		plant, err := h.repository.GetPlantByID(r.Context(), plantID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFoundResponse(w, r, "植物不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), PlantCtx, plant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) scheduleEntry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, "id")

		entry, err := h.repository.GetScheduleEntryByID(entryID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFoundResponse(w, r, "养护任务不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ScheduleEntryCtx, entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
