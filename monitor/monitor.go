package monitor

import (
	"net/http"
	"os"

	"beamtime-api/config"

	"github.com/gin-gonic/gin"
)

// RegisterLogsRoute serves the backend log file to holders of LOGS_TOKEN.
// The route is not mounted when LOGS_TOKEN is empty.
func RegisterLogsRoute(router *gin.Engine) {
	token := os.Getenv("LOGS_TOKEN")
	if token == "" {
		return
	}
	router.GET("/logs", func(c *gin.Context) {
		if c.Query("token") != token {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read log"})
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", logData)
	})
}
