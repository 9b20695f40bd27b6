package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wayfarerhq/wayfarer/pkg/internal/database"
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"
	"github.com/wayfarerhq/wayfarer/pkg/internal/security"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithSlug(slug string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("slug = ?", slug).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, fmt.Errorf("unable to get account by slug: %v", err)
	}
	return account, nil
}

var slugStripPattern = regexp.MustCompile(`[ ,'-]`)

// NewAccount registers an account. The username is derived from the person's
// name and de-duplicated with a numeric suffix; the slug is its lowercase form.
func NewAccount(email, password, firstName, lastName string) (models.Account, error) {
	var account models.Account

	var existing int64
	if err := database.C.Model(&models.Account{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return account, fmt.Errorf("unable to check email uniqueness: %v", err)
	} else if existing > 0 {
		return account, ErrEmailExists
	}

	base := slugStripPattern.ReplaceAllString(firstName+lastName, "")
	username := base
	slug := strings.ToLower(base)
	for number := 1; ; number++ {
		var count int64
		if err := database.C.Model(&models.Account{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return account, fmt.Errorf("unable to check slug uniqueness: %v", err)
		}
		if count == 0 {
			break
		}
		username = fmt.Sprintf("%s%d", base, number)
		slug = strings.ToLower(username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}

	account = models.Account{
		Slug:      slug,
		Username:  username,
		Email:     email,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, fmt.Errorf("unable to save account: %v", err)
	}

	return account, nil
}

// SignLoginTokenFor issues a bearer token for an account that already proved
// who they are, such as right after registration.
func SignLoginTokenFor(account models.Account, rememberMe bool) (string, error) {
	token, err := security.SignLoginToken(account.ID, rememberMe)
	if err != nil {
		return "", fmt.Errorf("unable to sign login token: %v", err)
	}
	return token, nil
}

// LoginAccount checks the credentials and issues a bearer token on success.
// The identifier matches either the email or the username.
func LoginAccount(usernameOrEmail, password string, rememberMe bool) (models.Account, string, error) {
	var account models.Account
	if err := database.C.
		Where("email = ? OR username = ?", usernameOrEmail, usernameOrEmail).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, "", ErrWrongCredentials
		}
		return account, "", fmt.Errorf("unable to get account: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return account, "", ErrWrongCredentials
	}

	token, err := security.SignLoginToken(account.ID, rememberMe)
	if err != nil {
		return account, "", fmt.Errorf("unable to sign login token: %v", err)
	}

	return account, token, nil
}

type AccountPatch struct {
	Username    *string
	FirstName   *string
	LastName    *string
	AvatarURL   *string
	City        *string
	TimeZone    *string
	Password    *string
	NewPassword *string
}

// EditAccount applies a partial update. A username change also moves the
// slug and is rejected when the new slug is taken; a password change has to
// be confirmed with the old one.
func EditAccount(user models.Account, patch AccountPatch) (models.Account, error) {
	if patch.Username != nil && *patch.Username != user.Username {
		slug := strings.ToLower(*patch.Username)
		var count int64
		if err := database.C.Model(&models.Account{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return user, fmt.Errorf("unable to check slug uniqueness: %v", err)
		} else if count > 0 {
			return user, ErrUsernameExists
		}
		user.Username = *patch.Username
		user.Slug = slug
	}

	if patch.Password != nil && patch.NewPassword != nil {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*patch.Password)) != nil {
			return user, ErrWrongCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return user, fmt.Errorf("unable to hash password: %v", err)
		}
		user.Password = string(hash)
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = patch.AvatarURL
	}
	if patch.City != nil {
		user.City = patch.City
	}
	if patch.TimeZone != nil {
		user.TimeZone = patch.TimeZone
	}

	if err := database.C.Save(&user).Error; err != nil {
		return user, fmt.Errorf("unable to save account: %v", err)
	}

	return user, nil
}

// DeleteAccount removes an account after confirming the password.
func DeleteAccount(user models.Account, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return ErrNotAuthorized
	}

	if err := database.C.Delete(&user).Error; err != nil {
		return fmt.Errorf("unable to delete account: %v", err)
	}

	return nil
}
