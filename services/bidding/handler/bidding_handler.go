package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
	"skillswap/services/bidding/helpers"
	"skillswap/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	CreateProject(actor models.Actor, in models.ProjectInput) (models.Project, error)
	GetProject(projectID string) (models.Project, error)
	PlaceBid(ctx context.Context, actor models.Actor, projectID string, in models.BidInput) (models.Bid, error)
	GetBidsForProject(projectID string) ([]models.Bid, error)
	GetBidsForFreelancer(freelancerID string) ([]models.Bid, error)
	UpdateBidStatus(ctx context.Context, actor models.Actor, bidID string, status models.BidStatus) (models.Bid, error)
	CounterOffer(ctx context.Context, actor models.Actor, bidID string, in models.CounterOfferInput) (models.Bid, error)
	AcceptCounterOffer(ctx context.Context, actor models.Actor, bidID string) (models.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// CreateProjectHandler handles POST /projects
func (h *BiddingHandler) CreateProjectHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProjectHandler", err)
		return
	}

	project, err := h.service.CreateProject(actor, req)
	if err != nil {
		respondError(c, "CreateProjectHandler", err, map[string]any{"actor": actor.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, project, "project created successfully")
	helpers.LogSuccess("CreateProjectHandler", "project created successfully", map[string]any{
		"project_id": project.ID,
		"client_id":  project.ClientID,
	})
}

// GetProjectHandler handles GET /projects/:project_id
func (h *BiddingHandler) GetProjectHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	project, err := h.service.GetProject(projectID)
	if err != nil {
		respondError(c, "GetProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, project, "project retrieved successfully")
}

// PlaceBidHandler handles POST /projects/:project_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var req models.BidInput
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), actor, projectID, req)
	if err != nil {
		respondError(c, "PlaceBidHandler", err, map[string]any{
			"project_id":    projectID,
			"freelancer_id": actor.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":        bid.ID,
		"project_id":    bid.ProjectID,
		"freelancer_id": bid.FreelancerID,
		"amount":        bid.Amount,
	})
}

// GetBidsByProjectHandler handles GET /projects/:project_id/bids
func (h *BiddingHandler) GetBidsByProjectHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	bids, err := h.service.GetBidsForProject(projectID)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		respondError(c, "GetBidsByProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}

	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByProjectHandler", "bids retrieved successfully", map[string]any{
		"project_id": projectID,
		"count":      len(bids),
	})
}

// GetBidsByFreelancerHandler handles GET /freelancers/:freelancer_id/bids
func (h *BiddingHandler) GetBidsByFreelancerHandler(c *gin.Context) {
	freelancerID := c.Param("freelancer_id")
	bids, err := h.service.GetBidsForFreelancer(freelancerID)
	if err != nil && !errors.Is(err, biddingerrors.ErrFreelancerNoBids) {
		respondError(c, "GetBidsByFreelancerHandler", err, map[string]any{"freelancer_id": freelancerID})
		return
	}

	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByFreelancerHandler", "bids retrieved successfully", map[string]any{
		"freelancer_id": freelancerID,
		"count":         len(bids),
	})
}

// UpdateBidStatusHandler handles PATCH /bids/:bid_id/status
func (h *BiddingHandler) UpdateBidStatusHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	var req models.StatusUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidStatusHandler", err)
		return
	}

	bid, err := h.service.UpdateBidStatus(c.Request.Context(), actor, bidID, req.Status)
	if err != nil {
		respondError(c, "UpdateBidStatusHandler", err, map[string]any{"bid_id": bidID, "status": string(req.Status)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid "+string(bid.Status))
	helpers.LogSuccess("UpdateBidStatusHandler", "bid status updated", map[string]any{
		"bid_id": bid.ID,
		"status": string(bid.Status),
	})
}

// CounterOfferHandler handles POST /bids/:bid_id/counter-offer
func (h *BiddingHandler) CounterOfferHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	var req models.CounterOfferInput
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CounterOfferHandler", err)
		return
	}

	bid, err := h.service.CounterOffer(c.Request.Context(), actor, bidID, req)
	if err != nil {
		respondError(c, "CounterOfferHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "counter-offer sent")
	helpers.LogSuccess("CounterOfferHandler", "counter-offer sent", map[string]any{
		"bid_id": bid.ID,
		"amount": req.Amount,
	})
}

// AcceptCounterOfferHandler handles POST /bids/:bid_id/accept-counter
func (h *BiddingHandler) AcceptCounterOfferHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	bid, err := h.service.AcceptCounterOffer(c.Request.Context(), actor, bidID)
	if err != nil {
		respondError(c, "AcceptCounterOfferHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "counter-offer accepted")
	helpers.LogSuccess("AcceptCounterOfferHandler", "counter-offer accepted", map[string]any{
		"bid_id":     bid.ID,
		"project_id": bid.ProjectID,
	})
}

func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := helpers.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, biddingerrors.ErrAuth, "authentication required")
		return models.Actor{}, false
	}
	return actor, true
}

func respondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}
