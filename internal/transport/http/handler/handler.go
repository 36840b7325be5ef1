package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lostfound-api/internal/apperr"
	mdw "lostfound-api/internal/transport/http/middleware"
	resp "lostfound-api/internal/transport/http/response"
)

// fail maps a service error onto the envelope. Internal and upstream causes
// are logged with the request id; the body carries only the safe message.
func fail(c *gin.Context, l *zap.Logger, err error) {
	status := apperr.Status(err)
	if status >= 500 {
		l.Error("request failed",
			zap.String("rid", c.GetString(mdw.KeyRequestID)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	resp.Error(c, status, apperr.Message(err))
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

func pageQuery(c *gin.Context) (int, int) {
	return atoiDefault(c.Query("page"), 1), atoiDefault(c.Query("size"), 20)
}
