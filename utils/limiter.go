package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CanSendNotification limits owner-notification mail to one per
// requester/travel pair per minute and 20 per requester per hour.
func CanSendNotification(rdb *redis.Client, pairKey, senderKey string) bool {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("notify_minute_%s", pairKey)
	hourKey := fmt.Sprintf("notify_hour_%s", senderKey)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	return cnt < 20
}

func MarkNotificationSent(rdb *redis.Client, pairKey, senderKey string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("notify_minute_%s", pairKey)
	hourKey := fmt.Sprintf("notify_hour_%s", senderKey)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
