package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist เก็บ jti ของ token ที่ logout แล้วไว้ใน Redis
// ถ้าไม่มี Redis (dev mode) ทุก method จะข้ามการทำงานและอนุญาตให้ผ่าน
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("blacklist:%s", jti)
}

// BlacklistToken เพิ่ม token เข้า blacklist จนกว่าจะหมดอายุ
func (b *TokenBlacklist) BlacklistToken(ctx context.Context, jti string, expiresIn time.Duration) error {
	if b == nil || b.client == nil || expiresIn <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKey(jti), "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func (b *TokenBlacklist) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	if b == nil || b.client == nil {
		return false, nil
	}
	_, err := b.client.Get(ctx, blacklistKey(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return true, nil
}
