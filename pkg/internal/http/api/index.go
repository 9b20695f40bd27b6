package api

import (
	"errors"

	"github.com/wayfarerhq/wayfarer/pkg/internal/http/exts"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/register", exts.RequireAccess(exts.AccessAny), createAccount)
			auth.Post("/login", exts.RequireAccess(exts.AccessAny), login)
		}

		accounts := api.Group("/accounts").Name("Accounts API")
		{
			accounts.Get("/me", exts.RequireAccess(exts.AccessSignedin), getMyAccount)
			accounts.Put("/me", exts.RequireAccess(exts.AccessSignedin), updateAccount)
			accounts.Delete("/me", exts.RequireAccess(exts.AccessSignedin), deleteAccount)

			accounts.Get("/:slug", exts.RequireAccess(exts.AccessAny), getAccountProfile)
			accounts.Get("/:slug/followers", exts.RequireAccess(exts.AccessAny), listFollowers)
			accounts.Get("/:slug/followings", exts.RequireAccess(exts.AccessAny), listFollowings)
			accounts.Get("/:slug/trips", exts.RequireAccess(exts.AccessAny), listTravelerTrips)
			accounts.Post("/:slug/follow", exts.RequireAccess(exts.AccessSignedin), followAccount)
			accounts.Delete("/:slug/follow", exts.RequireAccess(exts.AccessSignedin), unfollowAccount)
		}

		trips := api.Group("/trips").Name("Trips API")
		{
			trips.Get("/", exts.RequireAccess(exts.AccessAny), listTripFeed)
			trips.Get("/search", exts.RequireAccess(exts.AccessAny), search)
			trips.Post("/", exts.RequireAccess(exts.AccessSignedin), createTrip)
			trips.Get("/:tripId", exts.RequireAccess(exts.AccessAny), getTrip)
			trips.Put("/:tripId", exts.RequireAccess(exts.AccessSignedin), updateTrip)
			trips.Delete("/:tripId", exts.RequireAccess(exts.AccessSignedin), deleteTrip)
			trips.Post("/:tripId/steps", exts.RequireAccess(exts.AccessSignedin), createStep)
		}

		steps := api.Group("/steps").Name("Steps API")
		{
			steps.Put("/:stepId", exts.RequireAccess(exts.AccessSignedin), updateStep)
			steps.Delete("/:stepId", exts.RequireAccess(exts.AccessSignedin), deleteStep)
			steps.Post("/:stepId/like", exts.RequireAccess(exts.AccessSignedin), toggleStepLike)
			steps.Get("/:stepId/comments", exts.RequireAccess(exts.AccessAny), listStepComments)
			steps.Post("/:stepId/comments", exts.RequireAccess(exts.AccessSignedin), createComment)
		}

		comments := api.Group("/comments").Name("Comments API")
		{
			comments.Delete("/:commentId", exts.RequireAccess(exts.AccessSignedin), deleteComment)
		}
	}
}

func remapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrTripNotFound),
		errors.Is(err, services.ErrStepNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotAuthorized):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrWrongCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailExists),
		errors.Is(err, services.ErrUsernameExists),
		errors.Is(err, services.ErrSelfRelation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func parseCursor(c *fiber.Ctx) *int64 {
	if cursor := int64(c.QueryInt("cursor", 0)); cursor > 0 {
		return &cursor
	}
	return nil
}
