package jobs

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server. Blocks until the process exits.
func StartWorker() {
	redisURI := os.Getenv("REDIS_URI")
	if redisURI == "" {
		log.Fatal("❌ REDIS_URI environment variable not set. Worker cannot start.")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMeetingReminder, HandleMeetingReminderTask)
	mux.HandleFunc(TypeNotificationDispatch, HandleNotificationDispatchTask)

	log.Println("✅ Worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Worker failed:", err)
	}
}
