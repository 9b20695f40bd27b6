package api

import (
	"github.com/wayfarerhq/wayfarer/pkg/internal/http/exts"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createAccount(c *fiber.Ctx) error {
	var data struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8,max=72"`
		FirstName string `json:"first_name" validate:"required,max=64"`
		LastName  string `json:"last_name" validate:"required,max=64"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Email, data.Password, data.FirstName, data.LastName)
	if err != nil {
		return remapServiceError(err)
	}

	token, err := services.SignLoginTokenFor(account, false)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"slug":  account.Slug,
		"token": token,
	})
}

func login(c *fiber.Ctx) error {
	var data struct {
		UsernameOrEmail string `json:"username_or_email" validate:"required"`
		Password        string `json:"password" validate:"required"`
		RememberMe      bool   `json:"remember_me"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, token, err := services.LoginAccount(data.UsernameOrEmail, data.Password, data.RememberMe)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"ok":       true,
		"username": account.Username,
		"token":    token,
	})
}
