package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/Shree2124/ngostream-backend/utils"
)

const deviceTokenKey = "fcm:admin-tokens"

// DeviceService manages admin device tokens for push notifications. Tokens
// live in a Redis set so every instance sees the same device pool.
type DeviceService struct{}

func NewDeviceService() *DeviceService {
	return &DeviceService{}
}

func (d *DeviceService) RegisterToken(ctx context.Context, token string) error {
	if token == "" {
		return utils.BadRequest("device token is required")
	}
	if utils.RedisClient == nil {
		return fmt.Errorf("redis is not available")
	}
	return utils.RedisClient.SAdd(ctx, deviceTokenKey, token).Err()
}

func (d *DeviceService) RemoveToken(ctx context.Context, token string) error {
	if utils.RedisClient == nil {
		return fmt.Errorf("redis is not available")
	}
	return utils.RedisClient.SRem(ctx, deviceTokenKey, token).Err()
}

// Broadcast pushes an announcement to every registered admin device.
// Tokens Firebase rejects are pruned from the set.
func (d *DeviceService) Broadcast(ctx context.Context, title, body string) (int, error) {
	if !utils.IsFCMEnabled() {
		log.Println("⚠️ FCM disabled, broadcast skipped")
		return 0, nil
	}
	if utils.RedisClient == nil {
		return 0, fmt.Errorf("redis is not available")
	}

	tokens, err := utils.RedisClient.SMembers(ctx, deviceTokenKey).Result()
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, token := range tokens {
		if err := utils.SendPush(ctx, token, title, body); err != nil {
			log.Printf("⚠️ Push failed for token %.12s…, pruning: %v", token, err)
			utils.RedisClient.SRem(ctx, deviceTokenKey, token)
			continue
		}
		sent++
	}
	return sent, nil
}
