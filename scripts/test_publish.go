//go:build ignore
// +build ignore

// Ручная проверка воркера кеша: публикует уведомление о приёме событий
// в stream:events:ingest и смотрит, что воркер его забрал.
//
//	go run scripts/test_publish.go -redis localhost:6379 -date 2025-06-14
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type EventsIngestNotice struct {
	DateKeys []string `json:"date_keys"`
	Count    int      `json:"count"`
	Source   string   `json:"source,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	dateKey := flag.String("date", time.Now().UTC().Format("2006-01-02"), "Day key to invalidate (YYYY-MM-DD)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	notice := EventsIngestNotice{
		DateKeys: []string{*dateKey},
		Count:    1,
		Source:   "test-script",
	}

	data, err := json.Marshal(notice)
	if err != nil {
		log.Fatalf("Failed to marshal notice: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:events:ingest",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish notice: %v", err)
	}

	fmt.Printf("✅ Notice published successfully!\n")
	fmt.Printf("   Stream: stream:events:ingest\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Date keys: %v\n", notice.DateKeys)

	// Даём воркеру время забрать сообщение и проверяем pending группы
	fmt.Printf("\n⏳ Checking consumer group state...\n")
	time.Sleep(3 * time.Second)

	groups, err := client.XInfoGroups(ctx, "stream:events:ingest").Result()
	if err != nil {
		log.Fatalf("Failed to inspect stream groups: %v", err)
	}

	for _, g := range groups {
		fmt.Printf("   Group %s: pending=%d, last-delivered=%s\n", g.Name, g.Pending, g.LastDeliveredID)
	}

	if len(groups) == 0 {
		fmt.Println("❌ No consumer groups found, is the worker running?")
	}
}
