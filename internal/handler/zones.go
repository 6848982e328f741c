package handler

import (
	"net/http"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
	"github.com/greenhaven-dev/garden-planner/backend/internal/layout"
)

func (h *Handler) CreateZone(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	var req struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description"`
		Width       float64 `json:"width" validate:"required,gt=0"`
		Length      float64 `json:"length" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	zone := &domain.Zone{
		GardenID:    garden.ID,
		Name:        req.Name,
		Description: req.Description,
		Width:       req.Width,
		Length:      req.Length,
	}

	if err := h.repository.CreateZone(zone); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建区域成功", zone)
}

func (h *Handler) GetGardenZones(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	zones, err := h.repository.GetZonesByGardenID(garden.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取花园所有区域成功", zones)
}

func (h *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	h.successResponse(w, r, "获取区域成功", zone)
}

func (h *Handler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Width       *float64 `json:"width" validate:"omitempty,gt=0"`
		Length      *float64 `json:"length" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}
	if req.Width != nil {
		zone.Width = *req.Width
	}
	if req.Length != nil {
		zone.Length = *req.Length
	}

	if err := h.repository.UpdateZone(zone); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新区域成功", zone)
}

func (h *Handler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	if err := h.repository.DeleteZone(zone.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除区域成功", nil)
}

// 对区域内的植物做简单的面积核算，帮助用户判断区域是否已经种满
func (h *Handler) GetZonePlacement(w http.ResponseWriter, r *http.Request) {
	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	plants, err := h.repository.GetPlantsByZoneID(zone.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	plan := layout.PlanPlacement(zone, plants)

	h.successResponse(w, r, "计算区域布局成功", plan)
}
