package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	info := []gin.H{
		{"from": "in_progress", "to": "completed", "actor": "business"},
		{"from": "in_progress", "to": "cancelled", "actor": "business"},
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"initial_state":   "in_progress",
		"terminal_states": []string{"completed", "cancelled"},
		"description":     "Marketplace Order Lifecycle State Machine",
	})
}
