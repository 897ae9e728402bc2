package main

import (
	"time"

	"skillswap/internal/auth"
	bidding "skillswap/internal/biddingService"
	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/realtime"
	"skillswap/internal/repository"
	"skillswap/internal/server"
	"skillswap/utils"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	channel, err := realtime.NewChannelFor(cfg.RealtimeTransport, cfg.RedisURL)
	if err != nil {
		utils.Fatal("failed to set up realtime channel", map[string]any{"error": err.Error()})
	}
	defer channel.Close()
	if realtime.ProcessLocal(cfg.RealtimeTransport) {
		utils.Warn("realtime transport is process-local, broadcasts will not reach other processes", map[string]any{
			"transport": cfg.RealtimeTransport,
			"hint":      "set REALTIME_TRANSPORT=redis to reach bidwatch",
		})
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		utils.Fatal("failed to set up tokens", map[string]any{"error": err.Error()})
	}

	repo := repository.NewMemoryRepo()
	prepopulateProjects(repo)
	issueDevTokens(tokens)

	biddingSvc := bidding.NewBiddingService(repo, channel)

	router := server.SetupRouter(biddingSvc, tokens)

	utils.Info("starting bid service", map[string]any{
		"address":   cfg.ServerAddress,
		"transport": cfg.RealtimeTransport,
	})
	if err := router.Run(cfg.ServerAddress); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// prepopulateProjects adds sample projects to the in-memory repo
func prepopulateProjects(repo *repository.MemoryRepo) {
	now := time.Now().UTC()
	projects := []models.Project{
		{ID: "project1", ClientID: "client1", Title: "Company landing page", Description: "Responsive marketing site", Budget: 1500, Status: models.ProjectOpen, CreatedAt: now},
		{ID: "project2", ClientID: "client1", Title: "Inventory API", Description: "REST API for stock tracking", Budget: 4000, Status: models.ProjectOpen, CreatedAt: now},
		{ID: "project3", ClientID: "client2", Title: "Logo refresh", Description: "Update brand mark", Budget: 300, Status: models.ProjectOpen, CreatedAt: now},
	}

	for _, p := range projects {
		if err := repo.AddProject(p); err != nil {
			utils.Warn("failed to add sample project", map[string]any{"project_id": p.ID, "error": err.Error()})
		}
	}
}

// issueDevTokens logs bearer tokens for the sample users
func issueDevTokens(tokens *auth.TokenIssuer) {
	users := []models.Actor{
		{UserID: "client1", Role: models.RoleClient},
		{UserID: "client2", Role: models.RoleClient},
		{UserID: "freelancer1", Role: models.RoleFreelancer},
		{UserID: "freelancer2", Role: models.RoleFreelancer},
	}
	for _, u := range users {
		token, err := tokens.Issue(u)
		if err != nil {
			utils.Warn("failed to issue dev token", map[string]any{"user_id": u.UserID, "error": err.Error()})
			continue
		}
		utils.Info("dev token", map[string]any{"user_id": u.UserID, "role": string(u.Role), "token": token})
	}
}
