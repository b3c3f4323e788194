package api

import (
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-deals/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getProfileIDFromContext берет из контекста gin ID текущего профиля. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getProfileIDFromContext(c *gin.Context) int64 {
	profileIDStr, exist := c.Get(middlewares.CurrentProfileIDKey)
	if !exist {
		return 0
	}
	profileID, ok := profileIDStr.(int64)
	if !ok {
		return 0
	}
	return profileID
}

// parseIDParam разбирает числовой path-параметр. При некорректном значении отвечает 400
// и возвращает false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
