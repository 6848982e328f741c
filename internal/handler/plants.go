package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
	"github.com/greenhaven-dev/garden-planner/backend/internal/utils"
)

func (h *Handler) CreatePlant(w http.ResponseWriter, r *http.Request) {
	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	var req struct {
		Name             string    `json:"name" validate:"required"`
		Species          string    `json:"species"`
		GrowthStage      string    `json:"growthStage" validate:"required,oneof=seedling vegetative flowering mature"`
		SoilCondition    string    `json:"soilCondition" validate:"required,oneof=sandy loamy clay"`
		PlantedAt        time.Time `json:"plantedAt" validate:"required"`
		RequiredArea     float64   `json:"requiredArea" validate:"required,gt=0"`
		NeedsWatering    bool      `json:"needsWatering"`
		NeedsFertilizing bool      `json:"needsFertilizing"`
		NeedsPruning     bool      `json:"needsPruning"`
		NeedsHarvesting  bool      `json:"needsHarvesting"`
		NeedsWeeding     bool      `json:"needsWeeding"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 种植日期不应该在未来
	if req.PlantedAt.After(time.Now()) {
		h.errorResponse(w, r, "种植日期不能晚于当前时间")
		return
	}

	// 区域剩下的面积要容得下新植物
	existing, err := h.repository.GetPlantsByZoneID(zone.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := utils.ValidateZoneCapacity(zone, existing, req.RequiredArea); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	plant := &domain.Plant{
		ZoneID:           zone.ID,
		Name:             req.Name,
		Species:          req.Species,
		GrowthStage:      domain.GrowthStage(req.GrowthStage),
		SoilCondition:    domain.SoilCondition(req.SoilCondition),
		PlantedAt:        req.PlantedAt,
		RequiredArea:     req.RequiredArea,
		NeedsWatering:    req.NeedsWatering,
		NeedsFertilizing: req.NeedsFertilizing,
		NeedsPruning:     req.NeedsPruning,
		NeedsHarvesting:  req.NeedsHarvesting,
		NeedsWeeding:     req.NeedsWeeding,
	}

	if err := h.repository.CreatePlant(plant); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "plants_zone_id_fkey":
				h.errorResponse(w, r, "植物所属区域不存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建植物成功", plant)
}

func (h *Handler) GetZonePlants(w http.ResponseWriter, r *http.Request) {
	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	plants, err := h.repository.GetPlantsByZoneID(zone.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取区域所有植物成功", plants)
}

func (h *Handler) GetPlant(w http.ResponseWriter, r *http.Request) {
	plant := r.Context().Value(PlantCtx).(*domain.Plant)

	h.successResponse(w, r, "获取植物成功", plant)
}

func (h *Handler) UpdatePlant(w http.ResponseWriter, r *http.Request) {
	plant := r.Context().Value(PlantCtx).(*domain.Plant)

	var req struct {
		Name             *string  `json:"name"`
		Species          *string  `json:"species"`
		GrowthStage      *string  `json:"growthStage" validate:"omitempty,oneof=seedling vegetative flowering mature"`
		SoilCondition    *string  `json:"soilCondition" validate:"omitempty,oneof=sandy loamy clay"`
		RequiredArea     *float64 `json:"requiredArea" validate:"omitempty,gt=0"`
		NeedsWatering    *bool    `json:"needsWatering"`
		NeedsFertilizing *bool    `json:"needsFertilizing"`
		NeedsPruning     *bool    `json:"needsPruning"`
		NeedsHarvesting  *bool    `json:"needsHarvesting"`
		NeedsWeeding     *bool    `json:"needsWeeding"`
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
		plant.Name = *req.Name
	}
	if req.Species != nil {
		plant.Species = *req.Species
	}
	if req.GrowthStage != nil {
		plant.GrowthStage = domain.GrowthStage(*req.GrowthStage)
	}
	if req.SoilCondition != nil {
		plant.SoilCondition = domain.SoilCondition(*req.SoilCondition)
	}
	if req.RequiredArea != nil {
		plant.RequiredArea = *req.RequiredArea
	}
	if req.NeedsWatering != nil {
		plant.NeedsWatering = *req.NeedsWatering
	}
	if req.NeedsFertilizing != nil {
		plant.NeedsFertilizing = *req.NeedsFertilizing
	}
	if req.NeedsPruning != nil {
		plant.NeedsPruning = *req.NeedsPruning
	}
	if req.NeedsHarvesting != nil {
		plant.NeedsHarvesting = *req.NeedsHarvesting
	}
	if req.NeedsWeeding != nil {
		plant.NeedsWeeding = *req.NeedsWeeding
	}

	if err := h.repository.UpdatePlant(plant); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新植物成功", plant)
}

func (h *Handler) DeletePlant(w http.ResponseWriter, r *http.Request) {
	plant := r.Context().Value(PlantCtx).(*domain.Plant)

	if err := h.repository.DeletePlant(plant.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除植物成功", nil)
}
