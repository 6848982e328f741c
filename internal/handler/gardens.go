package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/greenhaven-dev/garden-planner/backend/internal/domain"
)

func (h *Handler) CreateGarden(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		OwnerEmail  string `json:"ownerEmail" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	garden := &domain.Garden{
		Name:        req.Name,
		Description: req.Description,
		OwnerEmail:  req.OwnerEmail,
	}

	if err := h.repository.CreateGarden(garden); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "gardens_name_key":
				h.errorResponse(w, r, "花园名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建花园成功", garden)
}

func (h *Handler) GetAllGardens(w http.ResponseWriter, r *http.Request) {
	gardens, err := h.repository.GetAllGardens()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有花园成功", gardens)
}

func (h *Handler) GetGarden(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	h.successResponse(w, r, "获取花园成功", garden)
}

func (h *Handler) UpdateGarden(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		OwnerEmail  *string `json:"ownerEmail" validate:"omitempty,email"`
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
		garden.Name = *req.Name
	}
	if req.Description != nil {
		garden.Description = *req.Description
	}
	if req.OwnerEmail != nil {
		garden.OwnerEmail = *req.OwnerEmail
	}

	if err := h.repository.UpdateGarden(garden); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "gardens_name_key":
				h.errorResponse(w, r, "花园名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新花园成功", garden)
}

func (h *Handler) DeleteGarden(w http.ResponseWriter, r *http.Request) {
	garden := r.Context().Value(GardenCtx).(*domain.Garden)

	if err := h.repository.DeleteGarden(garden.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除花园成功", nil)
}
