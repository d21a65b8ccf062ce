package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"taskhub/internal/apperrors"
	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/service"
)

const (
	demoEmail    = "demo@taskhub.local"
	demoPassword = "demo-password"
)

type sampleTask struct {
	Title   string
	Notes   string
	ListID  string
	DueDays int
	Done    bool
}

var sampleTasks = []sampleTask{
	{Title: "Try out taskhub", Notes: "You are looking at it", ListID: "inbox", Done: true},
	{Title: "Reply to landlord", ListID: "personal", DueDays: 1},
	{Title: "Prepare sprint review", Notes: "Slides + demo env", ListID: "work", DueDays: 3},
	{Title: "Milk", ListID: "shopping"},
	{Title: "Coffee beans", ListID: "shopping"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.List{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	listRepo := repository.NewListRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, listRepo, jwtService)

	// Register through the auth service so the default lists are seeded the
	// same way they are for real sign-ups. An existing demo user is fine.
	if _, err := authService.Register(ctx, demoEmail, demoPassword); err != nil {
		appErr := apperrors.FromError(err)
		if appErr == nil || appErr.Kind != apperrors.KindConflict {
			log.Fatalf("Failed to register demo user: %v", err)
		}
		log.Printf("Demo user %s already exists, reusing it", demoEmail)
	} else {
		log.Printf("Registered demo user %s", demoEmail)
	}

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err != nil {
		log.Fatalf("Failed to load demo user: %v", err)
	}

	created, skipped := 0, 0
	now := time.Now().UTC()
	for i, st := range sampleTasks {
		task := &model.Task{
			TaskID:    fmt.Sprintf("seed-%02d", i+1),
			UserID:    user.ID,
			Title:     st.Title,
			Notes:     st.Notes,
			Completed: st.Done,
			ListID:    st.ListID,
			// Spread creation times so the list has a stable, visible order.
			CreatedAt: now.Add(-time.Duration(len(sampleTasks)-i) * time.Hour).Format(time.RFC3339),
		}
		if st.DueDays > 0 {
			task.DueDate = now.AddDate(0, 0, st.DueDays).Format("2006-01-02")
		}
		if err := taskRepo.Create(ctx, task); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				skipped++
				continue
			}
			log.Fatalf("Failed to create sample task %q: %v", st.Title, err)
		}
		created++
	}

	log.Printf("Seed complete: %d tasks created, %d already present", created, skipped)
	log.Printf("Login with %s / %s", demoEmail, demoPassword)
}
