package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness endpoint for load balancers and monitoring. It does
// not touch the database: the process stays "up" even while the database
// is unreachable.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
