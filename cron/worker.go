package cron

import (
	"context"
	"log"

	"homeconnect/config"
	providerRepo "homeconnect/database/repository/provider"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAvailabilityReset = "provider:availability.reset"

// InitAvailabilityWorker runs the async worker and its scheduler in the
// background. The availableToday flag is day-scoped; at midnight UTC every
// provider that switched it off is rolled back to available.
func InitAvailabilityWorker(repo providerRepo.ProviderRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityReset, handleAvailabilityReset(repo, logger))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[AvailabilityWorker] failed to start worker: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	// Midnight UTC, once a day.
	if _, err := scheduler.Register("0 0 * * *", asynq.NewTask(TypeAvailabilityReset, nil)); err != nil {
		log.Fatalf("[AvailabilityWorker] failed to register schedule: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[AvailabilityWorker] failed to start scheduler: %v", err)
		}
	}()
}

func handleAvailabilityReset(repo providerRepo.ProviderRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		reset, err := repo.ResetDailyAvailability(ctx)
		if err != nil {
			logger.Error("availability rollover failed", zap.Error(err))
			return err
		}
		logger.Info("availability rollover complete", zap.Int64("providersReset", reset))
		return nil
	}
}
