package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/validator"
)

type ActivityHandler struct {
	activityService service.ActivityService
	searchService   service.SearchService
	userRepo        repository.UserRepository
	dogRepo         repository.DogRepository
	redisClient     *redis.Client
	rateLimit       time.Duration
}

func NewActivityHandler(
	activityService service.ActivityService,
	searchService service.SearchService,
	userRepo repository.UserRepository,
	dogRepo repository.DogRepository,
	redisClient *redis.Client,
	rateLimit time.Duration,
) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		searchService:   searchService,
		userRepo:        userRepo,
		dogRepo:         dogRepo,
		redisClient:     redisClient,
		rateLimit:       rateLimit,
	}
}

func (h *ActivityHandler) LogActivity(c *gin.Context) {
	dogID, user, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, user.ID, "log_activity", h.rateLimit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if !allowed {
		ttl, _ := service.GetRateLimitTTL(c.Request.Context(), h.redisClient, user.ID, "log_activity")
		c.JSON(http.StatusTooManyRequests, rateLimitBody(ttl))
		return
	}

	var req dto.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.activityService.LogActivity(c.Request.Context(), dogID, user.ID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// rateLimitBody tells the caller how long to wait before retrying. The TTL is
// omitted when redis did not report one.
func rateLimitBody(ttl time.Duration) gin.H {
	body := gin.H{"error": "logging too fast, wait a moment"}
	if ttl > 0 {
		body["retry_after_seconds"] = int(ttl.Round(time.Second).Seconds())
	}
	return body
}

func (h *ActivityHandler) GetRecent(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	activities, err := h.activityService.GetRecent(c.Request.Context(), dogID, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activities})
}

func (h *ActivityHandler) LogMood(c *gin.Context) {
	dogID, user, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	var req dto.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	mood, err := h.activityService.LogMood(c.Request.Context(), dogID, user.ID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mood)
}

func (h *ActivityHandler) GetMoods(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	moods, err := h.activityService.GetRecentMoods(c.Request.Context(), dogID, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": moods})
}

func (h *ActivityHandler) SearchActivities(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	if h.searchService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	hits, err := h.searchService.SearchActivities(dogID, query, limit)
	if err != nil {
		response.ResponseUpstreamError(c, "meilisearch", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": hits})
}
