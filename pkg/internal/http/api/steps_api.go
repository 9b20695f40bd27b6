package api

import (
	"github.com/wayfarerhq/wayfarer/pkg/internal/http/exts"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createStep(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	tripID, err := c.ParamsInt("tripId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "trip id must be a number")
	}

	var data struct {
		Name      string    `json:"name" validate:"required,max=256"`
		Country   string    `json:"country" validate:"required,max=64"`
		Coord     []float64 `json:"coord" validate:"required,len=2"`
		ArrivedAt int64     `json:"arrived_at" validate:"required"`
		Story     *string   `json:"story" validate:"omitempty,max=8192"`
		PhotoURLs []string  `json:"photo_urls" validate:"dive,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Step{
		Name:      data.Name,
		Country:   data.Country,
		Coord:     data.Coord,
		ArrivedAt: data.ArrivedAt,
		Story:     data.Story,
		PhotoURLs: data.PhotoURLs,
	}

	item, err = services.NewStep(user, uint(tripID), item)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true, "id": item.ID})
}

func updateStep(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("stepId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "step id must be a number")
	}

	var data struct {
		Name      *string   `json:"name" validate:"omitempty,max=256"`
		Country   *string   `json:"country" validate:"omitempty,max=64"`
		Coord     []float64 `json:"coord" validate:"omitempty,len=2"`
		ArrivedAt *int64    `json:"arrived_at"`
		Story     *string   `json:"story" validate:"omitempty,max=8192"`
		PhotoURLs []string  `json:"photo_urls" validate:"dive,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.EditStep(user, uint(id), services.StepPatch{
		Name:      data.Name,
		Country:   data.Country,
		Coord:     data.Coord,
		ArrivedAt: data.ArrivedAt,
		Story:     data.Story,
		PhotoURLs: data.PhotoURLs,
	})
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(item)
}

func deleteStep(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("stepId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "step id must be a number")
	}

	if err := services.DeleteStep(user, uint(id)); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func toggleStepLike(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("stepId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "step id must be a number")
	}

	liked, err := services.ToggleStepLike(user, uint(id))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"liked":      liked,
		"like_count": services.CountStepLikes(uint(id)),
	})
}
