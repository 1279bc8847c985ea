package handler

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/acadion/acadion-access/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SystemHandler serves a runtime snapshot for operators.
type SystemHandler struct {
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type systemInfo struct {
	Uptime     string `json:"uptime"`
	GoVersion  string `json:"go_version"`
	NumCPU     int    `json:"num_cpu"`
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heap_alloc"`
	HeapSys    uint64 `json:"heap_sys"`
	NumGC      uint32 `json:"num_gc"`
}

// GetSystemInfo godoc
// GET /api/v1/admin/system/info
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	info := systemInfo{
		Uptime:     formatDuration(time.Since(h.startTime)),
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.Sys,
		NumGC:      ms.NumGC,
	}

	response.Success(c, http.StatusOK, gin.H{"system": info})
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
