package main

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Seeds a known admin account plus ten random users with two tweets each;
// the admin follows all of them, so its home timeline is immediately full.
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)

	identity := service.NewIdentityService(userRepo)
	relSvc := service.NewRelationshipService(followRepo, userRepo)
	tweetSvc := service.NewTweetService(tweetRepo)

	ctx := context.Background()

	admin := must(identity.Register(ctx, "test@test.com", gofakeit.ImageURL(128, 128), "password"))
	must(tweetSvc.Create(ctx, admin.ID, gofakeit.ProductDescription()))

	for i := 0; i < 10; i++ {
		user := must(identity.Register(ctx, gofakeit.Email(), gofakeit.ImageURL(128, 128), "password"))
		must(tweetSvc.Create(ctx, user.ID, gofakeit.ProductDescription()))
		must(tweetSvc.Create(ctx, user.ID, gofakeit.ProductDescription()))
		if err := relSvc.Follow(ctx, admin.ID, user.ID); err != nil {
			panic(err)
		}
	}

	fmt.Println("database has been seeded")
}
