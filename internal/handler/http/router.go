package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/config"
	"github.com/yonseiedtech/reserve-backend-go/internal/handler/http/middleware"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	User      UserHandler
	Batch     BatchHandler
	Training  TrainingHandler
	Transport TransportHandler
	Payment   PaymentHandler
	Commuting CommutingHandler
	Meal      MealHandler
	Notice    NoticeHandler
	Message   MessageHandler
	Survey    SurveyHandler
	Push      PushHandler
	MobileID  MobileIDHandler
	SSE       SSEHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "reserve-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/kakao", h.Auth.LoginWithKakao)
			r.Get("/oauth/callback/kakao", h.Auth.OAuthCallbackKakao)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// SSE stream authenticates with its own short-lived token
		r.Get("/events", h.SSE.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)
			r.Get("/events/token", h.SSE.GetToken)

			r.With(middleware.RequireAdmin).Post("/auth/register", h.Auth.Register)

			r.Route("/users", func(r chi.Router) {
				r.Put("/my/address", h.User.UpdateMyAddress)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.User.List)
					r.Get("/{userID}", h.User.Get)
				})
				r.With(middleware.RequireAdmin).Put("/{userID}", h.User.Update)
			})

			r.Route("/batches", func(r chi.Router) {
				r.Get("/", h.Batch.List)
				r.Get("/{batchID}", h.Batch.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Batch.Create)
					r.Put("/{batchID}", h.Batch.Update)
					r.Delete("/{batchID}", h.Batch.Delete)

					r.Post("/{batchID}/members", h.Batch.AddMember)
					r.Put("/members/{memberID}", h.Batch.SetMemberStatus)
					r.Delete("/members/{memberID}", h.Batch.RemoveMember)
				})

				r.Get("/{batchID}/members", h.Batch.ListMembers)
				r.Get("/{batchID}/trainings", h.Training.ListByBatch)
				r.Get("/{batchID}/compensation/total", h.Training.BatchTotal)
				r.Get("/{batchID}/meals", h.Meal.ListByBatch)
				r.With(middleware.RequireCook).Post("/{batchID}/meals", h.Meal.SavePlan)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)

					r.Get("/{batchID}/payment", h.Payment.GetPayment)
					r.Post("/{batchID}/payment/transition", h.Payment.TransitionPayment)
					r.Put("/{batchID}/payment", h.Payment.UpdatePaymentDetails)
					r.Get("/{batchID}/refund", h.Payment.GetRefund)
					r.Post("/{batchID}/refund/transition", h.Payment.TransitionRefund)
					r.Put("/{batchID}/refund", h.Payment.UpdateRefundDetails)

					r.Post("/{batchID}/transport/estimates", h.Transport.EstimateBatch)
					r.Get("/{batchID}/transport/estimates", h.Transport.ListByBatch)
				})
			})

			r.Route("/trainings", func(r chi.Router) {
				r.Get("/{trainingID}", h.Training.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Training.Create)
					r.Put("/{trainingID}", h.Training.Update)
					r.Delete("/{trainingID}", h.Training.Delete)
					r.Put("/{trainingID}/override-rate", h.Training.SetOverrideRate)
				})
			})

			r.With(middleware.RequireManager).Post("/transport/estimate", h.Transport.QuickEstimate)

			r.Route("/commuting", func(r chi.Router) {
				r.Post("/check-in", h.Commuting.CheckIn)
				r.Post("/check-out", h.Commuting.CheckOut)
				r.Get("/my", h.Commuting.GetMyRecord)
				r.Get("/my/records", h.Commuting.ListMyRecords)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/manual", h.Commuting.ManualEntry)
					r.Get("/records", h.Commuting.ListByDate)
				})
			})

			r.Route("/zones", func(r chi.Router) {
				r.Get("/", h.Commuting.ListZones)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Commuting.CreateZone)
					r.Put("/{zoneID}", h.Commuting.UpdateZone)
					r.Delete("/{zoneID}", h.Commuting.DeleteZone)
				})
			})

			r.With(middleware.RequireCook).Delete("/meals/{planID}", h.Meal.DeletePlan)

			r.Route("/notices", func(r chi.Router) {
				r.Get("/", h.Notice.List)
				r.Get("/{noticeID}", h.Notice.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Notice.Create)
					r.Put("/{noticeID}", h.Notice.Update)
					r.Delete("/{noticeID}", h.Notice.Delete)
				})
			})

			r.Route("/messages", func(r chi.Router) {
				r.Post("/", h.Message.Send)
				r.Get("/inbox", h.Message.Inbox)
				r.Put("/{messageID}/read", h.Message.MarkRead)
			})

			r.Route("/surveys", func(r chi.Router) {
				r.Get("/", h.Survey.List)
				r.Get("/{surveyID}", h.Survey.Get)
				r.Post("/{surveyID}/answer", h.Survey.Answer)
				r.Get("/{surveyID}/my-answer", h.Survey.MyAnswer)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Survey.Create)
					r.Get("/{surveyID}/tally", h.Survey.Tally)
					r.Post("/{surveyID}/close", h.Survey.Close)
					r.Delete("/{surveyID}", h.Survey.Delete)
				})
			})

			r.Route("/push", func(r chi.Router) {
				r.Get("/vapid-key", h.Push.VAPIDPublicKey)
				r.Post("/subscriptions", h.Push.Subscribe)
				r.Delete("/subscriptions", h.Push.Unsubscribe)
			})

			r.Route("/mobile-id", func(r chi.Router) {
				r.Get("/my", h.MobileID.GetMyCard)
				r.Post("/my/photo", h.MobileID.UploadPhoto)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.MobileID.Issue)
					r.Post("/{cardID}/revoke", h.MobileID.Revoke)
				})
			})
		})
	})

	return r
}
