// Seeds a demo account with tags and a spread of sample tasks.
// Expects DATABASE_URL and JWT_SECRET; reuses the registration path so the
// demo user gets the same default tags as a real signup.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "seed-only-secret"
	}
	service.InitJWT(secret)

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	tags := repository.NewTagRepository(pool)
	tasks := repository.NewTaskRepository(pool)

	auth := service.NewAuthService(users, tags)
	taskSvc := service.NewTaskService(tasks)
	tagSvc := service.NewTagService(tags)

	ctx := context.Background()
	name := "Demo User"

	user, err := auth.Register(ctx, &validation.RegisterRequest{
		Email:    "demo@example.com",
		Password: "demo1234",
		Name:     &name,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			log.Println("demo user already exists, nothing to do")
			return
		}
		log.Fatalf("create demo user: %v", err)
	}
	log.Printf("demo user created id=%s\n", user.ID)

	tagList, err := tagSvc.List(ctx, user.ID)
	if err != nil {
		log.Fatalf("list tags: %v", err)
	}
	tagByName := make(map[string]string)
	for _, t := range tagList {
		tagByName[t.Name] = t.ID
	}

	str := func(s string) *string { return &s }
	due := func(days int) *string {
		d := time.Now().AddDate(0, 0, days).Format(time.RFC3339)
		return &d
	}

	samples := []validation.CreateTaskRequest{
		{
			Title:       "Finish quarterly report",
			Description: str("Compile the numbers and send to the team"),
			Priority:    validation.NullableOf("HIGH"),
			DueDate:     due(2),
			TagIDs:      []string{tagByName["Work"]},
		},
		{
			Title:    "Review pull requests",
			Status:   validation.NullableOf("DOING"),
			DueDate:  due(1),
			TagIDs:   []string{tagByName["Work"], tagByName["Urgent"]},
			Priority: validation.NullableOf("HIGH"),
		},
		{
			Title:   "Book dentist appointment",
			DueDate: due(-3),
			TagIDs:  []string{tagByName["Personal"]},
		},
		{
			Title:    "Buy groceries",
			Priority: validation.NullableOf("LOW"),
			TagIDs:   []string{tagByName["Personal"]},
		},
		{
			Title:   "Renew gym membership",
			Status:  validation.NullableOf("DONE"),
			DueDate: due(-1),
		},
	}

	for i := range samples {
		in, err := samples[i].Validate()
		if err != nil {
			log.Fatalf("sample task %d invalid: %v", i, err)
		}
		if _, err := taskSvc.Create(ctx, user.ID, in); err != nil {
			log.Fatalf("create sample task %d: %v", i, err)
		}
	}
	log.Printf("seeded %d tasks\n", len(samples))

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
