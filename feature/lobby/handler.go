package lobby

import (
	"errors"

	"mod-compat/core/logger"
	"mod-compat/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SortRequest is the body of POST /lobbies/sort.
type SortRequest struct {
	Filtered []string `json:"filtered"`
	All      []string `json:"all"`
}

// FilterRequest is the body of POST /lobbies/filter. An empty checksum uses the local one.
type FilterRequest struct {
	Checksum string   `json:"checksum"`
	Lobbies  []string `json:"lobbies"`
}

// Handler handles HTTP requests for lobbies.
type Handler struct {
	service *Service
	host    bool
}

// NewHandler creates a new HTTP handler. Publishing is only served when host is true.
func NewHandler(service *Service, host bool) *Handler {
	return &Handler{service: service, host: host}
}

// RegisterRoutes registers the lobby routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lobbies")
	group.Get("/", h.HandleSearch)
	group.Post("/sort", h.HandleSort)
	group.Post("/filter", h.HandleFilter)
	group.Get("/:id/metadata", h.HandleGetMetadata)
	group.Put("/:id/metadata", h.HandlePutMetadata)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/publish", h.HandlePublish)
	group.Get("/:id/diff", h.HandleDiff)
	group.Get("/:id/join", h.HandleJoin)
}

func (h *Handler) fail(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, ErrLobbyNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.String("lobby_id", c.Params("id")), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleSearch lists lobbies.
// @Summary List Lobbies
// @Description Lists stored lobbies: compatible first, then unknown, then incompatible. Lobbies matching the local checksum lead each group.
// @Tags lobbies
// @Produce json
// @Success 200 {array} LobbySummary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lobbies [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	lobbies, err := h.service.Search(c.Context())
	if err != nil {
		return h.fail(c, err, "Lobby search failed")
	}
	return c.JSON(lobbies)
}

// HandleSort sorts an explicit set of lobbies.
// @Summary Sort Lobbies
// @Tags lobbies
// @Accept json
// @Produce json
// @Param body body SortRequest true "Lobby ids"
// @Success 200 {array} LobbySummary
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 404 {object} map[string]string "Lobby Not Found"
// @Router /lobbies/sort [post]
func (h *Handler) HandleSort(c *fiber.Ctx) error {
	var req SortRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	lobbies, err := h.service.Sort(c.Context(), req.Filtered, req.All)
	if err != nil {
		return h.fail(c, err, "Lobby sort failed")
	}
	return c.JSON(lobbies)
}

// HandleFilter keeps lobbies with a matching checksum.
// @Summary Filter Lobbies By Checksum
// @Tags lobbies
// @Accept json
// @Produce json
// @Param body body FilterRequest true "Lobby ids and checksum"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string "Invalid Request"
// @Router /lobbies/filter [post]
func (h *Handler) HandleFilter(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ids, err := h.service.FilterByChecksum(c.Context(), req.Lobbies, req.Checksum)
	if err != nil {
		return h.fail(c, err, "Lobby filter failed")
	}
	return c.JSON(ids)
}

// HandleGetMetadata returns a lobby's metadata.
// @Summary Get Lobby Metadata
// @Tags lobbies
// @Produce json
// @Param id path string true "Lobby ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Lobby Not Found"
// @Router /lobbies/{id}/metadata [get]
func (h *Handler) HandleGetMetadata(c *fiber.Ctx) error {
	metadata, err := h.service.GetMetadata(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Reading lobby metadata failed")
	}
	return c.JSON(metadata)
}

// HandlePutMetadata replaces a lobby's metadata.
// @Summary Put Lobby Metadata
// @Tags lobbies
// @Accept json
// @Param id path string true "Lobby ID"
// @Param metadata body map[string]string true "Metadata"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid Request"
// @Router /lobbies/{id}/metadata [put]
func (h *Handler) HandlePutMetadata(c *fiber.Ctx) error {
	var metadata map[string]string
	if err := c.BodyParser(&metadata); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "metadata must be an object of strings"})
	}
	if err := h.service.PutMetadata(c.Context(), c.Params("id"), metadata); err != nil {
		return h.fail(c, err, "Writing lobby metadata failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete removes a lobby.
// @Summary Delete Lobby
// @Tags lobbies
// @Param id path string true "Lobby ID"
// @Success 204
// @Failure 404 {object} map[string]string "Lobby Not Found"
// @Router /lobbies/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteLobby(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err, "Deleting lobby failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePublish publishes the local inventory into a lobby.
// @Summary Publish Inventory
// @Description Encodes the local inventory into the lobby's metadata pages and sets its checksum. Only available on hosts.
// @Tags lobbies
// @Produce json
// @Param id path string true "Lobby ID"
// @Success 200 {object} PublishResult
// @Failure 403 {object} map[string]string "Not A Host"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lobbies/{id}/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	if !h.host {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "publishing requires the host role"})
	}
	result, err := h.service.Publish(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Publishing inventory failed")
	}
	return c.JSON(result)
}

// HandleDiff returns the diff of a lobby against the local inventory.
// @Summary Lobby Diff
// @Tags lobbies
// @Produce json
// @Param id path string true "Lobby ID"
// @Param category query string false "all, compatible, incompatible or unknown"
// @Success 200 {object} DiffResponse
// @Failure 400 {object} map[string]string "Invalid Category"
// @Failure 404 {object} map[string]string "Lobby Not Found"
// @Router /lobbies/{id}/diff [get]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	category, err := reconcile.ParseCategory(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	resp, err := h.service.Diff(c.Context(), c.Params("id"), category)
	if err != nil {
		return h.fail(c, err, "Lobby diff failed")
	}
	return c.JSON(resp)
}

// HandleJoin returns the join decision for a lobby.
// @Summary Join Decision
// @Tags lobbies
// @Produce json
// @Param id path string true "Lobby ID"
// @Success 200 {object} JoinDecision
// @Failure 404 {object} map[string]string "Lobby Not Found"
// @Router /lobbies/{id}/join [get]
func (h *Handler) HandleJoin(c *fiber.Ctx) error {
	decision, err := h.service.JoinDecision(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Join decision failed")
	}
	return c.JSON(decision)
}
