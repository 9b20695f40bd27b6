package api

import (
	"github.com/wayfarerhq/wayfarer/pkg/internal/http/exts"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func getMyAccount(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func getAccountProfile(c *fiber.Ctx) error {
	slug := c.Params("slug")
	viewer := exts.GetViewer(c)

	account, err := services.GetAccountWithSlug(slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"account":         account,
		"follower_count":  services.CountAccountFollowers(account),
		"following_count": services.CountAccountFollowings(account),
		"is_following":    services.IsAccountFollowing(account.Slug, viewer),
		"is_follower":     services.IsAccountFollower(account.Slug, viewer),
	})
}

func updateAccount(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Username    *string `json:"username" validate:"omitempty,min=3,max=64"`
		FirstName   *string `json:"first_name" validate:"omitempty,max=64"`
		LastName    *string `json:"last_name" validate:"omitempty,max=64"`
		AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
		City        *string `json:"city"`
		TimeZone    *string `json:"time_zone"`
		Password    *string `json:"password"`
		NewPassword *string `json:"new_password" validate:"omitempty,min=8,max=72"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.EditAccount(user, services.AccountPatch{
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		AvatarURL:   data.AvatarURL,
		City:        data.City,
		TimeZone:    data.TimeZone,
		Password:    data.Password,
		NewPassword: data.NewPassword,
	})
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(account)
}

func deleteAccount(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.DeleteAccount(user, data.Password); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func listFollowers(c *fiber.Ctx) error {
	page, err := services.ListAccountFollowers(c.Params("slug"), parseCursor(c))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(page)
}

func listFollowings(c *fiber.Ctx) error {
	page, err := services.ListAccountFollowings(c.Params("slug"), parseCursor(c))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(page)
}

func followAccount(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	targetID, err := services.FollowAccount(user, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true, "id": targetID})
}

func unfollowAccount(c *fiber.Ctx) error {
	user, err := exts.EnsureAuthenticated(c)
	if err != nil {
		return err
	}

	targetID, err := services.UnfollowAccount(user, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"ok": true, "id": targetID})
}
