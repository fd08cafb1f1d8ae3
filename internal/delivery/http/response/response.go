// Package response defines the JSON bodies the HTTP API returns.
package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pond/internal/domain/entity"
)

// User is the public view of an account. The credential hash never leaves
// the server.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session carries a freshly issued token and its account.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Fish is the public view of a gallery doodle.
type Fish struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Artist          string    `json:"artist"`
	Image           string    `json:"image"`
	Upvotes         int       `json:"upvotes"`
	Downvotes       int       `json:"downvotes"`
	Score           int       `json:"score"`
	HotScore        float64   `json:"hotScore"`
	IsVisible       bool      `json:"isVisible"`
	NeedsModeration bool      `json:"needsModeration"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUser maps an account entity to its public view.
func NewUser(user *entity.User) User {
	return User{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	}
}

// NewSession maps a token and its account to the session body.
func NewSession(token string, user *entity.User) Session {
	return Session{Token: token, User: NewUser(user)}
}

// NewFish maps a doodle entity to its public view.
func NewFish(fish *entity.Fish) Fish {
	return Fish{
		ID:              fish.ID.String(),
		UserID:          fish.UserID.String(),
		Artist:          fish.Artist,
		Image:           fish.Image,
		Upvotes:         fish.Upvotes,
		Downvotes:       fish.Downvotes,
		Score:           fish.Score,
		HotScore:        fish.HotScore,
		IsVisible:       fish.IsVisible,
		NeedsModeration: fish.NeedsModeration,
		CreatedAt:       fish.CreatedAt,
	}
}

// NewFishList maps a slice of doodles.
func NewFishList(fishes []*entity.Fish) []Fish {
	out := make([]Fish, 0, len(fishes))
	for _, fish := range fishes {
		out = append(out, NewFish(fish))
	}

	return out
}

// JSON writes an arbitrary success body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes the plain {"success":true} acknowledgement body.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Error writes the uniform {"error":"<message>"} body.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}
