package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 { return 0 }
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 { k = 0 }
	if k >= len(xs) { k = len(xs)-1 }
	return xs[k]
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 { return v }
	}
	return def
}

// Measures follow-write latency and read-time home feed composition for one
// viewer following FOLLOWS authors with TWEETS posts each.
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	feedSvc := service.NewFeedService(followRepo, tweetRepo)

	FOLLOWS := envInt("FOLLOWS", 200)
	TWEETS := envInt("TWEETS", 20)
	READS := envInt("READS", 500)

	ctx := context.Background()

	viewer := must(userRepo.Create(ctx, uuid.NewString()[:8]+"@example.com", "", "x"))

	followDurs := make([]time.Duration, 0, FOLLOWS)
	for i := 0; i < FOLLOWS; i++ {
		author := must(userRepo.Create(ctx, uuid.NewString()[:8]+"@example.com", "", "x"))
		for j := 0; j < TWEETS; j++ {
			must(tweetRepo.Create(ctx, author.ID, fmt.Sprintf("post %d from %s", j, author.Email)))
		}
		st := time.Now()
		if err := followRepo.Create(ctx, viewer.ID, author.ID); err != nil { panic(err) }
		followDurs = append(followDurs, time.Since(st))
	}

	readDurs := make([]time.Duration, 0, READS)
	var rows int
	for i := 0; i < READS; i++ {
		st := time.Now()
		items := must(feedSvc.Home(ctx, viewer.ID))
		readDurs = append(readDurs, time.Since(st))
		rows = len(items)
	}

	fmt.Printf("FOLLOWS=%d TWEETS=%d READS=%d rows=%d\n", FOLLOWS, TWEETS, READS, rows)
	fmt.Printf("Follow write: p50=%v p95=%v p99=%v\n", pct(followDurs, 0.50), pct(followDurs, 0.95), pct(followDurs, 0.99))
	fmt.Printf("Home feed read: p50=%v p95=%v p99=%v\n", pct(readDurs, 0.50), pct(readDurs, 0.95), pct(readDurs, 0.99))
}
