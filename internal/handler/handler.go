package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/apollomonasa/duty-roster/backend/internal/config"
	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/people", func(r chi.Router) {
			r.Get("/", h.GetAllPeople)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/import", h.ImportRoster)
			r.Route("/{studentID}", func(r chi.Router) {
				r.Use(h.personInfo)
				r.Get("/", h.GetPerson)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdatePerson)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeletePerson)
			})
		})

		r.Route("/grade-rules", func(r chi.Router) {
			r.Get("/", h.GetAllGradeRules)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateGradeRule)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.gradeRule)
				r.Get("/", h.GetGradeRule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateGradeRule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteGradeRule)
			})
		})

		r.Route("/shift-specs", func(r chi.Router) {
			r.Get("/", h.GetShiftSpecs)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.ReplaceShiftSpecs)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/generate", h.GenerateSchedule)
			r.Route("/histories", func(r chi.Router) {
				r.Get("/", h.GetAllScheduleHistories)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.scheduleHistory)
					r.Get("/", h.GetScheduleHistory)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteScheduleHistory)
					r.Get("/export", h.ExportScheduleHistory)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/notify", h.NotifySchedulePublished)
				})
			})
		})
	})
}
