package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stablemgr/stableapi/models"
	"github.com/stablemgr/stableapi/stable"
	"github.com/stablemgr/stableapi/store"
)

// Root returns a welcome message.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Stable Manager API!"})
}

// ListHorses returns every non-forged horse in store order.
func (h *Handler) ListHorses(c echo.Context) error {
	horses, err := h.store.ListActive(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, horses)
}

// GetHorse returns a single horse. Forged horses 404 like unknown ids, but
// the response body says which case it was.
func (h *Handler) GetHorse(c echo.Context) error {
	id := c.Param("id")
	horse, err := h.store.Lookup(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Horse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if horse.Status == models.StatusForged {
		return echo.NewHTTPError(http.StatusNotFound, "Horse not found or is forged")
	}
	return c.JSON(http.StatusOK, horse)
}

// CreateHorse builds a new record from the payload: fresh uuid, next free
// display order when none given, derived opening balances, seeded balance
// history.
func (h *Handler) CreateHorse(c echo.Context) error {
	var req models.HorseCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	order := req.Order
	if order == nil {
		next, err := h.store.NextOrder(ctx)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		order = &next
	}

	horse, err := stable.New(h.newID(), req, order, h.now())
	if err != nil {
		zap.L().Error("create horse failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Error processing new horse data.")
	}

	if err := h.store.Insert(ctx, horse); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	zap.L().Info("horse created", zap.String("id", horse.ID), zap.String("name", horse.Name))
	return c.JSON(http.StatusCreated, horse)
}

// UpdateHorse merges a partial payload into the stored record and commits the
// reconciled result. The read-reconcile-replace sequence is not atomic across
// requests; concurrent updates to the same id are last-writer-wins.
func (h *Handler) UpdateHorse(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	orig, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Horse with ID "+id+" not found or is forged")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var upd models.HorseUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	horse, err := stable.Reconcile(orig, upd, h.now())
	if err != nil {
		if errors.Is(err, stable.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.store.Replace(ctx, id, horse); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Horse with ID "+id+" not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, horse)
}

// ForgeHorse soft-deletes a horse. Forging an already-forged horse is a
// no-op; forging keeps the record in the store.
func (h *Handler) ForgeHorse(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	horse, err := h.store.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Horse with ID "+id+" not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if horse.Status == models.StatusForged {
		return c.NoContent(http.StatusNoContent)
	}

	horse.Status = models.StatusForged
	if err := h.store.Replace(ctx, id, horse); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	zap.L().Info("horse forged", zap.String("id", id), zap.String("name", horse.Name))
	return c.NoContent(http.StatusNoContent)
}
