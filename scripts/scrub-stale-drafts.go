package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to inspect stored drafts without importing the full entity
type draftRecord struct {
	ID        string `json:"id"`
	PlayerID  string `json:"player_id"`
	ExpiresAt int64  `json:"expires_at"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for stale draft data...")

	now := time.Now().Unix()
	var staleKeys []string
	var checkedCount int

	// Drafts written before key TTLs were introduced can outlive their
	// expiry timestamp, and any corrupted payload blocks the repository
	iter := client.Scan(ctx, 0, "draft:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, "draft:player:") {
			continue // mappings are checked in the second pass
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record draftRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("x Corrupted JSON in %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		if record.ExpiresAt > 0 && record.ExpiresAt < now {
			fmt.Printf("x Expired draft in %s: expired %s\n", key,
				time.Unix(record.ExpiresAt, 0).Format(time.RFC3339))
			staleKeys = append(staleKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Player mappings that point at a draft that no longer exists
	iter = client.Scan(ctx, 0, "draft:player:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		draftID, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		exists, err := client.Exists(ctx, "draft:"+draftID).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", key, err)
			continue
		}
		if exists == 0 {
			fmt.Printf("x Dangling mapping in %s: draft %s is gone\n", key, draftID)
			staleKeys = append(staleKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d stale entries\n", checkedCount, len(staleKeys))

	if len(staleKeys) == 0 {
		fmt.Println("No stale data found!")
		return
	}

	fmt.Println("\nStale keys:")
	for _, key := range staleKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these stale entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range staleKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
