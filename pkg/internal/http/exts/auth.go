package exts

import (
	"strings"

	"github.com/wayfarerhq/wayfarer/pkg/internal/models"
	"github.com/wayfarerhq/wayfarer/pkg/internal/security"
	"github.com/wayfarerhq/wayfarer/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AccessRequirement is declared statically on each route registration and
// looked up as a plain value; nothing is inferred at runtime.
type AccessRequirement int

const (
	// AccessAny admits everyone; a valid credential still binds the viewer so
	// handlers can personalize.
	AccessAny = AccessRequirement(iota)
	// AccessSignedin denies admission without a resolved viewer.
	AccessSignedin
)

var ErrUnauthenticated = fiber.NewError(fiber.StatusUnauthorized, "you need to be signed in")

// Authorize resolves an optional bearer credential against an access
// requirement. Under AccessAny a missing, malformed or stale credential
// degrades to an anonymous viewer; under AccessSignedin every failure along
// the decode-and-lookup chain is a denial.
func Authorize(credential *string, requirement AccessRequirement) (*models.Account, error) {
	var viewer *models.Account
	if credential != nil {
		if claims, err := security.VerifyLoginToken(*credential); err == nil {
			if user, err := services.GetAccountWithID(claims.UserID); err == nil {
				viewer = &user
			}
		}
	}

	if requirement == AccessSignedin && viewer == nil {
		return nil, ErrUnauthenticated
	}

	return viewer, nil
}

// ContextBinder resolves the bearer credential into the request-scoped viewer
// when it can. It never rejects; enforcement belongs to RequireAccess.
func ContextBinder(c *fiber.Ctx) error {
	if token, ok := parseBearerToken(c); ok {
		if viewer, err := Authorize(&token, AccessAny); err == nil && viewer != nil {
			c.Locals("user", *viewer)
		}
	}
	return c.Next()
}

// RequireAccess gates the routes behind it with a declared requirement.
func RequireAccess(requirement AccessRequirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if requirement == AccessSignedin {
			if _, ok := c.Locals("user").(models.Account); !ok {
				return ErrUnauthenticated
			}
		}
		return c.Next()
	}
}

// GetViewer returns the viewer bound to this request, or nil when anonymous.
func GetViewer(c *fiber.Ctx) *models.Account {
	if user, ok := c.Locals("user").(models.Account); ok {
		return &user
	}
	return nil
}

// EnsureAuthenticated returns the bound viewer or a denial.
func EnsureAuthenticated(c *fiber.Ctx) (models.Account, error) {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return user, ErrUnauthenticated
	}
	return user, nil
}

func parseBearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) == 0 {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
