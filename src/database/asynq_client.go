package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// NewAsynqClient initializes an Asynq client only if Redis is available.
func NewAsynqClient(addr string) *asynq.Client {
	if addr == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: addr})
	log.Println("✅ Asynq Client initialized successfully")
	return client
}

// NewAsynqServer สร้าง worker server ที่ใช้ Redis ตัวเดียวกับ client
func NewAsynqServer(addr string, concurrency int) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: addr},
		asynq.Config{
			Concurrency: concurrency,
			Queues:      map[string]int{"default": 1},
		},
	)
}
