package apierrors

import (
	"taskhive/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// Respond writes the shared {ok:false, error} body for a failed operation.
// Internal errors are logged and replaced with a generic message so no
// storage or driver detail reaches the client.
func Respond(ctx *gin.Context, err error) {
	message := err.Error()

	if KindOf(err) == KindInternal {
		logger.GetLogger().Error(
			"Request failed",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"error", err,
		)
		message = "Server error"
	}

	ctx.JSON(HTTPStatus(err), gin.H{"ok": false, "error": message})
}
