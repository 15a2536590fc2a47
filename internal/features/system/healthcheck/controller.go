package system_healthcheck

import (
	"net/http"

	"taskhive/internal/util/logger"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.GetHealth)
}

// GetHealth
// @Summary Health check
// @Description Service liveness plus basic system stats
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	response := gin.H{"status": "ok"}

	stats, err := c.healthcheckService.GetSystemStats()
	if err != nil {
		// Stats are informational, the endpoint stays green without them
		logger.GetLogger().Warn("failed to collect system stats", "error", err)
	} else {
		response["system"] = stats
	}

	ctx.JSON(http.StatusOK, response)
}
