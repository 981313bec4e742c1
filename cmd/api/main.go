package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/config"
	appHTTP "github.com/yonseiedtech/reserve-backend-go/internal/handler/http"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/cron"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/jwt"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/kakao"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/oauth"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/sse"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/storage"
	"github.com/yonseiedtech/reserve-backend-go/internal/repository/postgresql"
	authService "github.com/yonseiedtech/reserve-backend-go/internal/service/auth"
	batchService "github.com/yonseiedtech/reserve-backend-go/internal/service/batch"
	commutingService "github.com/yonseiedtech/reserve-backend-go/internal/service/commuting"
	mealService "github.com/yonseiedtech/reserve-backend-go/internal/service/meal"
	messageService "github.com/yonseiedtech/reserve-backend-go/internal/service/message"
	mobileIDService "github.com/yonseiedtech/reserve-backend-go/internal/service/mobileid"
	noticeService "github.com/yonseiedtech/reserve-backend-go/internal/service/notice"
	paymentService "github.com/yonseiedtech/reserve-backend-go/internal/service/payment"
	pushService "github.com/yonseiedtech/reserve-backend-go/internal/service/push"
	surveyService "github.com/yonseiedtech/reserve-backend-go/internal/service/survey"
	trainingService "github.com/yonseiedtech/reserve-backend-go/internal/service/training"
	transportService "github.com/yonseiedtech/reserve-backend-go/internal/service/transport"
	userService "github.com/yonseiedtech/reserve-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	batchUserRepo := postgresql.NewBatchUserRepository(db)
	trainingRepo := postgresql.NewTrainingRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	estimateRepo := postgresql.NewEstimateRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	zoneRepo := postgresql.NewZoneRepository(db)
	mealPlanRepo := postgresql.NewMealPlanRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)
	messageRepo := postgresql.NewMessageRepository(db)
	surveyRepo := postgresql.NewSurveyRepository(db)
	surveyResponseRepo := postgresql.NewSurveyResponseRepository(db)
	pushSubscriptionRepo := postgresql.NewPushSubscriptionRepository(db)
	mobileIDRepo := postgresql.NewMobileIDRepository(db)

	// Shared infrastructure
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	kakaoClient := kakao.NewClient(cfg.Kakao.RESTAPIKey)
	kakaoOAuth := oauth.NewKakaoService(cfg.Kakao.ClientID, cfg.Kakao.ClientSecret, cfg.Kakao.RedirectURL)
	hub := sse.NewHub()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	if !cfg.PushEnabled() {
		slog.Warn("VAPID keys not configured; web push delivery is disabled")
	}

	// Services
	authSvc := authService.NewService(userRepo, jwtSvc, kakaoOAuth)
	userSvc := userService.NewService(userRepo)
	batchSvc := batchService.NewService(db, batchRepo, batchUserRepo, paymentRepo, kakaoClient)
	trainingSvc := trainingService.NewService(trainingRepo, compensationRepo, batchRepo)
	transportSvc := transportService.NewService(estimateRepo, batchRepo, batchUserRepo, userRepo, kakaoClient, kakaoClient)
	paymentSvc := paymentService.NewService(paymentRepo)
	commutingSvc := commutingService.NewService(recordRepo, zoneRepo)
	mealSvc := mealService.NewService(mealPlanRepo, batchRepo)
	pushSvc := pushService.NewService(pushSubscriptionRepo, cfg.Push)
	noticeSvc := noticeService.NewService(noticeRepo, batchUserRepo, userRepo, hub, pushSvc)
	messageSvc := messageService.NewService(messageRepo, userRepo, hub)
	surveySvc := surveyService.NewService(surveyRepo, surveyResponseRepo)
	mobileIDSvc := mobileIDService.NewService(mobileIDRepo, userRepo, fileStorage)

	// Periodic jobs
	scheduler := cron.NewScheduler()
	cron.NewCompensationJobs(trainingSvc).RegisterJobs(scheduler)
	cron.NewSurveyJobs(surveyRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(jwtSvc, authSvc),
		User:      appHTTP.NewUserHandler(userSvc),
		Batch:     appHTTP.NewBatchHandler(batchSvc),
		Training:  appHTTP.NewTrainingHandler(trainingSvc),
		Transport: appHTTP.NewTransportHandler(transportSvc),
		Payment:   appHTTP.NewPaymentHandler(paymentSvc),
		Commuting: appHTTP.NewCommutingHandler(commutingSvc),
		Meal:      appHTTP.NewMealHandler(mealSvc),
		Notice:    appHTTP.NewNoticeHandler(noticeSvc),
		Message:   appHTTP.NewMessageHandler(messageSvc),
		Survey:    appHTTP.NewSurveyHandler(surveySvc),
		Push:      appHTTP.NewPushHandler(pushSvc),
		MobileID:  appHTTP.NewMobileIDHandler(mobileIDSvc),
		SSE:       appHTTP.NewSSEHandler(jwtSvc, hub),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}
