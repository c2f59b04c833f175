package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/services"
	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/status"
	"gardgear/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(service services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: service, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())

	items, total, err := c.requestService.GetRequests(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, items, params, total)
}

// GetRequestsByStatus returns every request bucketed by status, keyed by
// the storage-form status name. Buckets for empty statuses are included
// so the board always renders all four columns.
func (c *RequestController) GetRequestsByStatus(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())
	params.Paginated = false

	items, _, err := c.requestService.GetRequests(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	groups := make(map[string]*dto.RequestStatusGroup, len(status.All))
	for _, s := range status.All {
		groups[s] = &dto.RequestStatusGroup{
			Label: status.Label(s),
			Items: []dto.MaintenanceRequestDTO{},
		}
	}
	for _, item := range items {
		group, ok := groups[item.Status]
		if !ok {
			// A row with a status outside the vocabulary means migration
			// drift; refuse to serve a half-correct board.
			return utils.ErrorResponse(ctx, status.ErrUnknown, c.logger)
		}
		group.Items = append(group.Items, item)
		group.Count++
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	item, err := c.requestService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, item)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "failed to read request body", err, nil),
			c.logger)
	}
	present, err := utils.PresentFields(body)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := json.Unmarshal(body, &payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.requestService.UpdateRequest(ctx.Request().Context(), id, payload, present)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, item)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.requestService.DeleteRequest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
