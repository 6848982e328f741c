package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/greenhaven-dev/garden-planner/backend/internal/config"
	"github.com/greenhaven-dev/garden-planner/backend/internal/repository"
	"github.com/greenhaven-dev/garden-planner/backend/internal/scheduler"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client
	scheduler     *scheduler.Scheduler

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client, sched *scheduler.Scheduler) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,
		scheduler:     sched,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 花园相关
	h.Mux.Route("/gardens", func(r chi.Router) {
		r.Post("/", h.CreateGarden)
		r.Get("/", h.GetAllGardens)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.garden)
			r.Get("/", h.GetGarden)
			r.Patch("/", h.UpdateGarden)
			r.Delete("/", h.DeleteGarden)

			// 花园的环境数据
			r.Route("/readings", func(r chi.Router) {
				r.Post("/", h.SubmitEnvironmentalReading)
				r.Get("/latest", h.GetLatestEnvironmentalReading)
			})

			r.Post("/zones", h.CreateZone)
			r.Get("/zones", h.GetGardenZones)
		})
	})

	// 区域相关
	h.Mux.Route("/zones/{id}", func(r chi.Router) {
		r.Use(h.zone)
		r.Get("/", h.GetZone)
		r.Patch("/", h.UpdateZone)
		r.Delete("/", h.DeleteZone)
		r.Get("/placement", h.GetZonePlacement)

		r.Post("/plants", h.CreatePlant)
		r.Get("/plants", h.GetZonePlants)
	})

	// 植物相关
	h.Mux.Route("/plants/{id}", func(r chi.Router) {
		r.Use(h.plant)
		r.Get("/", h.GetPlant)
		r.Patch("/", h.UpdatePlant)
		r.Delete("/", h.DeletePlant)

		// 养护排程
		r.Post("/schedule", h.GeneratePlantSchedule)
		r.Get("/schedule-entries", h.GetPlantScheduleEntries)
	})

	// 养护任务相关
	h.Mux.Route("/schedule-entries/{id}", func(r chi.Router) {
		r.Use(h.scheduleEntry)
		r.Get("/", h.GetScheduleEntry)
		r.Patch("/complete", h.CompleteScheduleEntry)
	})

	// 对手动改期的任务重新打分
	h.Mux.Post("/schedule/score", h.ScoreTaskPriority)
}
