package plugins

import (
	"errors"

	"mod-compat/core/logger"
	"mod-compat/core/plugin"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the plugin inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the plugin routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/plugins")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleRegister)
	group.Get("/checksum", h.HandleChecksum)
	group.Get("/pages", h.HandlePages)
	group.Get("/:guid", h.HandleGet)
	group.Delete("/:guid", h.HandleUnregister)
}

// HandleList returns the inventory.
// @Summary List Plugins
// @Description Lists the local plugin inventory in registration order.
// @Tags plugins
// @Produce json
// @Success 200 {array} plugin.Record
// @Router /plugins [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// HandleGet returns one plugin.
// @Summary Get Plugin
// @Tags plugins
// @Produce json
// @Param guid path string true "Plugin GUID"
// @Success 200 {object} plugin.Record
// @Failure 404 {object} map[string]string "Not Registered"
// @Router /plugins/{guid} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	rec, err := h.service.Get(c.Params("guid"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rec)
}

// HandleRegister registers or replaces a plugin.
// @Summary Register Plugin
// @Description Registers a plugin. Registering an existing GUID replaces it in place.
// @Tags plugins
// @Accept json
// @Produce json
// @Param plugin body RegisterRequest true "Plugin"
// @Success 201 {object} plugin.Record
// @Failure 400 {object} map[string]string "Invalid Plugin"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /plugins [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rec, err := h.service.Register(c.Context(), req)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Plugin registration failed", zap.String("guid", req.GUID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleUnregister removes a plugin.
// @Summary Unregister Plugin
// @Tags plugins
// @Param guid path string true "Plugin GUID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Registered"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /plugins/{guid} [delete]
func (h *Handler) HandleUnregister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	guid := c.Params("guid")

	if err := h.service.Unregister(c.Context(), guid); err != nil {
		if errors.Is(err, plugin.ErrNotRegistered) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Plugin unregistration failed", zap.String("guid", guid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleChecksum returns the inventory checksum.
// @Summary Inventory Checksum
// @Description SHA-256 over the everyone-level plugins. Empty when there are none.
// @Tags plugins
// @Produce json
// @Success 200 {object} ChecksumResponse
// @Router /plugins/checksum [get]
func (h *Handler) HandleChecksum(c *fiber.Ctx) error {
	return c.JSON(h.service.Checksum())
}

// HandlePages returns the metadata pages the inventory publishes as.
// @Summary Encoded Pages
// @Tags plugins
// @Produce json
// @Success 200 {object} wire.Report
// @Router /plugins/pages [get]
func (h *Handler) HandlePages(c *fiber.Ctx) error {
	return c.JSON(h.service.Pages())
}

func isValidationError(err error) bool {
	return errors.Is(err, plugin.ErrInvalidGUID) ||
		errors.Is(err, plugin.ErrInvalidVersion) ||
		errors.Is(err, plugin.ErrInvalidLevel) ||
		errors.Is(err, plugin.ErrInvalidStrictness)
}
