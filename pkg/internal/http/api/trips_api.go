package api

import (
	"github.com/wayfarerhq/wayfarer/pkg/internal/http/exts"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createTrip(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Name         string                   `json:"name" validate:"required,max=256"`
		Summary      *string                  `json:"summary" validate:"omitempty,max=4096"`
		CoverURL     *string                  `json:"cover_url" validate:"omitempty,url"`
		StartUnix    int64                    `json:"start_unix" validate:"required"`
		EndUnix      *int64                   `json:"end_unix"`
		Availability *models.TripAvailability `json:"availability"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Trip{
		Name:      data.Name,
		Summary:   data.Summary,
		CoverURL:  data.CoverURL,
		StartUnix: data.StartUnix,
		EndUnix:   data.EndUnix,
	}

	if data.Availability != nil {
		item.Availability = *data.Availability
	} else {
		item.Availability = models.TripAvailabilityPrivate
	}

	item, err = services.NewTrip(user, item)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true, "id": item.ID})
}

func getTrip(c *fiber.Ctx) error {
	id, err := c.ParamsInt("tripId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "trip id must be a number")
	}

	item, err := services.GetTrip(exts.GetViewer(c), uint(id))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(item)
}

func listTravelerTrips(c *fiber.Ctx) error {
	items, err := services.ListTripsWithTraveler(exts.GetViewer(c), c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(items)
}

func listTripFeed(c *fiber.Ctx) error {
	take := c.QueryInt("take", services.DefaultPageSize)
	offset := c.QueryInt("offset", 0)

	items, err := services.ListTripFeed(exts.GetViewer(c), take, offset)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(items)
}

func updateTrip(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("tripId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "trip id must be a number")
	}

	var data struct {
		Name         *string                  `json:"name" validate:"omitempty,max=256"`
		Summary      *string                  `json:"summary" validate:"omitempty,max=4096"`
		CoverURL     *string                  `json:"cover_url" validate:"omitempty,url"`
		StartUnix    *int64                   `json:"start_unix"`
		EndUnix      *int64                   `json:"end_unix"`
		Availability *models.TripAvailability `json:"availability"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.EditTrip(user, uint(id), services.TripPatch{
		Name:         data.Name,
		Summary:      data.Summary,
		CoverURL:     data.CoverURL,
		StartUnix:    data.StartUnix,
		EndUnix:      data.EndUnix,
		Availability: data.Availability,
	})
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(item)
}

func deleteTrip(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("tripId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "trip id must be a number")
	}

	if err := services.DeleteTrip(user, uint(id)); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func search(c *fiber.Ctx) error {
	probe := c.Query("probe")
	if len(probe) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "probe is required")
	}

	result, err := services.Search(probe)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(result)
}
