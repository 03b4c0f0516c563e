package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/record-store/internal/ports"
	"github.com/Gunvolt24/record-store/pkg/httpx"
)

// Handler — HTTP-обработчики поверх прикладных портов.
type Handler struct {
	records ports.RecordService
	orders  ports.OrderPlacer
	log     ports.Logger
}

func NewHandler(records ports.RecordService, orders ports.OrderPlacer, log ports.Logger) *Handler {
	return &Handler{records: records, orders: orders, log: log}
}

// NewRouter — сборка роутера: recovery, request-id, логирование,
// опциональный otelgin (при непустом имени сервиса) и маршруты.
// Кэш страниц подключается только к GET /records.
func NewRouter(h *Handler, pages ports.PageCache, cacheTTL time.Duration, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/records", CachePages(pages, cacheTTL), h.listRecords)
	r.POST("/records", h.createRecord)
	r.PUT("/records/:id", h.updateRecord)

	r.POST("/orders", h.placeOrder)

	return r
}
