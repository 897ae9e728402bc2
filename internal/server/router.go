package server

import (
	"skillswap/internal/validation"
	handler "skillswap/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService handler.BiddingServiceInterface, tokens TokenValidator) *gin.Engine {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.UseJSONNames(engine)
	}

	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)

	api := router.Group("", AuthMiddleware(tokens))

	projects := api.Group("/projects")
	{
		projects.POST("", biddingHandler.CreateProjectHandler)
		projects.GET("/:project_id", biddingHandler.GetProjectHandler)
		projects.POST("/:project_id/bids", biddingHandler.PlaceBidHandler)
		projects.GET("/:project_id/bids", biddingHandler.GetBidsByProjectHandler)
	}

	freelancers := api.Group("/freelancers")
	{
		freelancers.GET("/:freelancer_id/bids", biddingHandler.GetBidsByFreelancerHandler)
	}

	bids := api.Group("/bids")
	{
		bids.PATCH("/:bid_id/status", biddingHandler.UpdateBidStatusHandler)
		bids.POST("/:bid_id/counter-offer", biddingHandler.CounterOfferHandler)
		bids.POST("/:bid_id/accept-counter", biddingHandler.AcceptCounterOfferHandler)
	}

	return router
}
