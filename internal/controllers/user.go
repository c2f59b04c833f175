package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gardgear/internal/services"
	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: service, logger: logger}
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query())

	users, total, err := c.userService.GetUsers(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, users, params, total)
}

func (c *UserController) GetTechnicians(ctx echo.Context) error {
	var teamID uint64
	if raw := ctx.QueryParam("team_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "invalid team_id parameter", err, nil),
				c.logger)
		}
		teamID = id
	}

	users, err := c.userService.GetTechnicians(ctx.Request().Context(), teamID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, users)
}

// GetUsersByTeam requires team_id, unlike the technicians listing where
// it only narrows the result.
func (c *UserController) GetUsersByTeam(ctx echo.Context) error {
	raw := ctx.QueryParam("team_id")
	if raw == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "team_id parameter is required", nil, nil),
			c.logger)
	}
	teamID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid team_id parameter", err, nil),
			c.logger)
	}

	params := utils.ParseListParams(ctx.Request().URL.Query())
	params.Filters["team"] = strconv.FormatUint(teamID, 10)
	params.Paginated = false

	users, _, err := c.userService.GetUsers(ctx.Request().Context(), params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, users)
}

func (c *UserController) FindUser(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.userService.FindUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, user)
}
