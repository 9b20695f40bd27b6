package api

import (
	"github.com/wayfarerhq/wayfarer/pkg/internal/http/exts"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createComment(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	stepID, err := c.ParamsInt("stepId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "step id must be a number")
	}

	var data struct {
		Text string `json:"text" validate:"required,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewComment(user, uint(stepID), data.Text)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true, "id": item.ID})
}

func listStepComments(c *fiber.Ctx) error {
	stepID, err := c.ParamsInt("stepId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "step id must be a number")
	}

	page, err := services.ListStepComments(uint(stepID), parseCursor(c))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(page)
}

func deleteComment(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("commentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "comment id must be a number")
	}

	if err := services.DeleteComment(user, uint(id)); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
