package service

import (
	"net/http"

	"github.com/iqtrace/iqtrace/internal/config"
	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/errors"
	"github.com/iqtrace/iqtrace/internal/logger"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
)

// to mock service in tests
type AuthService interface {
	Register(user domain.User, password domain.Password) (domain.User, error)
	Login(email domain.Email, password domain.Password) (string, error)
	Me(email domain.Email) (domain.User, error)
	UpdateMe(email domain.Email, update domain.User) (domain.User, error)
	Users() ([]domain.User, error)
	DeleteUser(id domain.UserId) error
}

type Auth struct {
	storage   AuthStorage
	email     Email
	jwt       Jwt
	cfg       *config.Config
	sanitizer *bluemonday.Policy
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	User(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	Users() ([]domain.User, error)
	UpdateProfile(user domain.User) error
	DeleteUser(id domain.UserId) error
}

type Email interface {
	Send(recipientEmail, subject, body string) error
	IsCorrect(email domain.Email) error
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, email Email, jwt Jwt, cfg *config.Config) *Auth {
	return &Auth{
		storage:   storage,
		email:     email,
		jwt:       jwt,
		cfg:       cfg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Register creates a new user with defaults: not admin, not verified, no
// enrolled encoding. is_admin is never settable through self-registration.
func (a *Auth) Register(user domain.User, password domain.Password) (domain.User, error) {
	user.Email = domain.NormalizeEmail(user.Email)

	if err := a.email.IsCorrect(user.Email); err != nil {
		return domain.User{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user.PassHash = string(passHash)
	user.Admin = false
	user.Verified = false
	user.FaceEncoding = nil
	user.Temperature = nil
	a.sanitizeFreeText(&user)

	id, err := a.storage.SaveUser(user)
	if err != nil {
		return domain.User{}, err
	}

	return a.storage.UserById(id)
}

// Login checks credentials and returns an access token. A missing user and a
// wrong password are deliberately indistinguishable to the caller.
func (a *Auth) Login(email domain.Email, password domain.Password) (string, error) {
	email = domain.NormalizeEmail(email)

	if err := a.email.IsCorrect(email); err != nil {
		return "", err
	}

	user, err := a.storage.User(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusBadRequest}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		logger.Log.Debug("password verification failed", "error", err)
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusBadRequest}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}

func (a *Auth) Me(email domain.Email) (domain.User, error) {
	return a.storage.User(email)
}

// UpdateMe applies profile changes for the calling user. Email and is_admin
// from the update payload are ignored: both are immutable here.
func (a *Auth) UpdateMe(email domain.Email, update domain.User) (domain.User, error) {
	update.Email = email
	a.sanitizeFreeText(&update)

	if err := a.storage.UpdateProfile(update); err != nil {
		return domain.User{}, err
	}
	return a.storage.User(email)
}

func (a *Auth) Users() ([]domain.User, error) {
	return a.storage.Users()
}

func (a *Auth) DeleteUser(id domain.UserId) error {
	return a.storage.DeleteUser(id)
}

// sanitizeFreeText strips markup from user-supplied free-form fields.
func (a *Auth) sanitizeFreeText(user *domain.User) {
	user.FirstName = a.sanitizer.Sanitize(user.FirstName)
	user.LastName = a.sanitizer.Sanitize(user.LastName)
	user.Address = a.sanitizer.Sanitize(user.Address)
	for k, v := range user.Survey {
		user.Survey[k] = a.sanitizer.Sanitize(v)
	}
}
