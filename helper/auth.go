package helper

import (
	"fmt"
	"time"

	"travel_agency/config"
	"travel_agency/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// SetSessionCookies stores the token pair in HTTPOnly cookies.
func SetSessionCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	secure := config.Config("COOKIE_SECURE") == "true"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   secure,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   secure,
		Path:     "/",
	})
}

// ClearSessionCookies signs the browser out by expiring both cookies.
func ClearSessionCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "None",
			Path:     "/",
		})
	}
}

// ClaimFromToken extracts the session claim from a parsed token. Zero-value
// claim means the token carried no usable identity.
func ClaimFromToken(token *jwt.Token) model.TokenClaim {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}
	claim := model.TokenClaim{}
	if id, ok := claims["accountId"].(float64); ok {
		claim.AccountId = uint(id)
	}
	if email, ok := claims["email"].(string); ok {
		claim.Email = email
	}
	return claim
}
