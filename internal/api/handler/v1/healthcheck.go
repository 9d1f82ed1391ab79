package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
