package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient สร้าง Redis client และ ping ก่อนใช้งาน
// คืนค่า nil เมื่อไม่ได้ตั้งค่า REDIS_URI (dev mode)
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set. Token blacklist and background jobs are disabled.")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}
