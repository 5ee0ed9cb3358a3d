package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"salesdash/internal/models"
)

// Handler serves the aggregated tables and the rendered dashboard.
// It starts empty and returns 503 until the background pipeline calls
// Publish, so the server can boot before the data exists.
type Handler struct {
	mu     sync.RWMutex
	bundle *models.DashboardBundle
	image  []byte // rendered PNG
}

func NewHandler() *Handler {
	return &Handler{}
}

// Publish swaps in a freshly built bundle and its rendered image.
func (h *Handler) Publish(bundle *models.DashboardBundle, image []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bundle = bundle
	h.image = image
}

func (h *Handler) snapshot() (*models.DashboardBundle, []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.bundle, h.image
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/dashboard.png", h.GetDashboardImage)
	api.GET("/sales/regions", h.GetRegionSales)
	api.GET("/sales/categories", h.GetCategorySales)
	api.GET("/sales/monthly", h.GetMonthlySales)
}

// --- HANDLERS ---

func (h *Handler) Health(c echo.Context) error {
	bundle, _ := h.snapshot()
	if bundle == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(c echo.Context) error {
	bundle, _ := h.snapshot()
	if bundle == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, bundle)
}

func (h *Handler) GetDashboardImage(c echo.Context) error {
	_, img := h.snapshot()
	if img == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.Blob(http.StatusOK, "image/png", img)
}

func (h *Handler) GetRegionSales(c echo.Context) error {
	bundle, _ := h.snapshot()
	if bundle == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, bundle.RegionSales)
}

func (h *Handler) GetCategorySales(c echo.Context) error {
	bundle, _ := h.snapshot()
	if bundle == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, bundle.CategorySales)
}

func (h *Handler) GetMonthlySales(c echo.Context) error {
	bundle, _ := h.snapshot()
	if bundle == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, bundle.MonthlySales)
}
