package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"job_hunter/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a
	// user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SetResetToken stores a reset token and its expiry on the user.
	SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error

	// ConsumeResetToken atomically swaps an unexpired reset token for a new
	// password hash and clears the token fields in the same update. It
	// returns ErrInvalidResetToken when no matching row exists, which makes
	// every token single-use even under concurrent requests.
	ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) error
}

// TokenIssuer mints signed session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// ProfileUpdate carries the optional fields of a profile update request.
// Nil pointers leave the stored value untouched.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Location       *string
	Bio            *string
	ProfilePicture *string
	SocialLinks    *entity.SocialLinks
}

// authUsecase implements the credential store contract: registration,
// login, password lifecycle and profile updates.
type authUsecase struct {
	users      UserRepository
	tokens     TokenIssuer
	bcryptCost int
	resetTTL   time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, bcryptCost int, resetTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		resetTTL:   resetTTL,
	}
}

// normalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Register creates a new user with a hashed password and returns the user
// together with a freshly issued session token.
func (u *authUsecase) Register(ctx context.Context, email, password, name string) (*entity.User, string, error) {
	hashed, err := u.hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Email:    normalizeEmail(email),
		Password: hashed,
		Name:     strings.TrimSpace(name),
	}
	// Uniqueness rides on the database unique index; there is no separate
	// existence check that could race with a concurrent registration.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns the user with a session token.
// A bcrypt comparison runs even when the email is unknown so both failure
// paths cost the same.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	// Dummy hash keeps the compare running when the user does not exist.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// ChangePassword replaces the user's password after verifying the current one.
func (u *authUsecase) ChangePassword(ctx context.Context, user *entity.User, currentPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrCurrentPasswordMismatch
	}

	hashed, err := u.hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return u.users.Update(ctx, user)
}

// UpdateProfile applies the provided fields to the user. A changed email is
// re-checked for uniqueness.
func (u *authUsecase) UpdateProfile(ctx context.Context, user *entity.User, in ProfileUpdate) (*entity.User, error) {
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			if _, err := u.users.FindByEmail(ctx, email); err == nil {
				return nil, ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = *in.ProfilePicture
	}
	if in.SocialLinks != nil {
		user.SocialLinks = *in.SocialLinks
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword generates an unguessable reset token valid for the
// configured window and stores it on the user.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	expiry := time.Now().Add(u.resetTTL)
	if err := u.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword redeems a reset token for a new password. The token is
// single-use: the repository clears it in the same atomic update.
func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashed, err := u.hashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.users.ConsumeResetToken(ctx, token, hashed)
}
