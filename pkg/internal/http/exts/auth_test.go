package exts

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"
	"github.com/wayfarerhq/wayfarer/pkg/internal/security"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) models.Account {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	raw, err := db.DB()
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db

	viper.Set("security.jwt_secret", "unit-test-secret")

	account := models.Account{
		Slug:      "wanderer",
		Username:  "Wanderer",
		Email:     "wanderer@example.com",
		Password:  "not-a-real-hash",
		FirstName: "Wan",
		LastName:  "Derer",
	}
	require.NoError(t, database.C.Create(&account).Error)

	return account
}

func staleTokenFor(t *testing.T, userID uint) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, security.LoginClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuthorizeValidCredential(t *testing.T) {
	account := setupAuthTest(t)

	token, err := security.SignLoginToken(account.ID, false)
	require.NoError(t, err)

	viewer, err := Authorize(&token, AccessSignedin)
	require.NoError(t, err)
	require.NotNil(t, viewer)
	require.Equal(t, account.Slug, viewer.Slug)
}

func TestAuthorizeMissingCredential(t *testing.T) {
	setupAuthTest(t)

	viewer, err := Authorize(nil, AccessAny)
	require.NoError(t, err)
	require.Nil(t, viewer)

	_, err = Authorize(nil, AccessSignedin)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorizeStaleCredential(t *testing.T) {
	account := setupAuthTest(t)

	stale := staleTokenFor(t, account.ID)

	// the open tier degrades to an anonymous viewer
	viewer, err := Authorize(&stale, AccessAny)
	require.NoError(t, err)
	require.Nil(t, viewer)

	// the signed-in tier turns the same failure into a denial
	_, err = Authorize(&stale, AccessSignedin)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorizeUnknownAccount(t *testing.T) {
	setupAuthTest(t)

	token, err := security.SignLoginToken(9999, false)
	require.NoError(t, err)

	viewer, err := Authorize(&token, AccessAny)
	require.NoError(t, err)
	require.Nil(t, viewer)

	_, err = Authorize(&token, AccessSignedin)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRequireAccessOverHTTP(t *testing.T) {
	account := setupAuthTest(t)

	app := fiber.New()
	app.Use(ContextBinder)
	app.Get("/feed", RequireAccess(AccessAny), func(c *fiber.Ctx) error {
		if viewer := GetViewer(c); viewer != nil {
			return c.SendString(viewer.Slug)
		}
		return c.SendString("anonymous")
	})
	app.Get("/me", RequireAccess(AccessSignedin), func(c *fiber.Ctx) error {
		user, err := EnsureAuthenticated(c)
		if err != nil {
			return err
		}
		return c.SendString(user.Slug)
	})

	call := func(path, token string) int {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		if len(token) > 0 {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	valid := lo.Must(security.SignLoginToken(account.ID, false))
	stale := staleTokenFor(t, account.ID)

	require.Equal(t, fiber.StatusOK, call("/feed", ""))
	require.Equal(t, fiber.StatusOK, call("/feed", stale))
	require.Equal(t, fiber.StatusOK, call("/feed", valid))

	require.Equal(t, fiber.StatusUnauthorized, call("/me", ""))
	require.Equal(t, fiber.StatusUnauthorized, call("/me", stale))
	require.Equal(t, fiber.StatusUnauthorized, call("/me", "garbage"))
	require.Equal(t, fiber.StatusOK, call("/me", valid))
}
