package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Minimal projection of the persisted ledger for inspection
type ledgerData struct {
	CombatID string `json:"combat_id"`
	SavedAt  string `json:"saved_at"`
	States   []struct {
		ActorID           string `json:"actor_id"`
		ActionID          string `json:"action_id"`
		CurrentCharges    int    `json:"current_charges"`
		MaxCharges        int    `json:"max_charges"`
		RemainingCooldown int    `json:"remaining_cooldown"`
		Unit              string `json:"unit"`
	} `json:"states"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: redisURL})
	ctx := context.Background()

	keys, err := client.Keys(ctx, "cooldown_ledger:*").Result()
	if err != nil {
		log.Fatalf("failed to list ledger keys: %v", err)
	}
	if len(keys) == 0 {
		fmt.Println("no cooldown ledgers found")
		return
	}

	for _, key := range keys {
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			log.Printf("failed to read %s: %v", key, err)
			continue
		}

		var ledger ledgerData
		if err := json.Unmarshal([]byte(data), &ledger); err != nil {
			log.Printf("failed to parse %s: %v", key, err)
			continue
		}

		fmt.Printf("%s (saved %s)\n", ledger.CombatID, ledger.SavedAt)
		for _, st := range ledger.States {
			fmt.Printf("  %s/%s: %d/%d charges, %d %ss to next recovery\n",
				st.ActorID, st.ActionID, st.CurrentCharges, st.MaxCharges, st.RemainingCooldown, st.Unit)
		}
	}
}
