// Package middleware provides HTTP middleware for the fiber app, most
// importantly the principal-resolution middleware that turns a request
// into an authenticated Profile.
package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"paybroker/internal/models"
	"paybroker/internal/repositories"
	"paybroker/internal/repositories/cache"
	"paybroker/internal/utils"
)

const principalKey = "principal"

// PrincipalResolver resolves the acting principal for every request. The
// profile id comes either from the profile_id header or from a Bearer
// token; the profile itself is loaded cache-first. Downstream code trusts
// the resolved Profile as-is.
type PrincipalResolver struct {
	profiles repositories.ProfileRepository
	cache    *cache.Service
	log      zerolog.Logger
}

func NewPrincipalResolver(profiles repositories.ProfileRepository, cacheSvc *cache.Service, log zerolog.Logger) *PrincipalResolver {
	if profiles == nil {
		panic("profile repository is required")
	}
	return &PrincipalResolver{
		profiles: profiles,
		cache:    cacheSvc,
		log:      log,
	}
}

// Handler loads the acting profile and stores it in the request context.
func (m *PrincipalResolver) Handler(c *fiber.Ctx) error {
	profileID, err := m.resolveProfileID(c)
	if err != nil {
		return utils.Unauthorized(c, err.Error())
	}

	profile, err := m.cache.GetProfile(c.Context(), profileID)
	if err != nil {
		m.log.Warn().Err(err).Msg("profile cache read failed")
	}

	if profile == nil {
		profile, err = m.profiles.GetByID(c.Context(), profileID)
		if err != nil {
			return utils.Unauthorized(c, "unknown principal")
		}
		if err := m.cache.CacheProfile(c.Context(), profile); err != nil {
			m.log.Warn().Err(err).Msg("profile cache write failed")
		}
	}

	c.Locals(principalKey, profile)
	return c.Next()
}

func (m *PrincipalResolver) resolveProfileID(c *fiber.Ctx) (uint, error) {
	if header := c.Get("profile_id"); header != "" {
		id, err := strconv.ParseUint(header, 10, 64)
		if err != nil {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "invalid profile_id header")
		}
		return uint(id), nil
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		return claims.ProfileID, nil
	}

	return 0, fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
}

// Principal returns the profile resolved for this request, or nil.
func Principal(c *fiber.Ctx) *models.Profile {
	profile, _ := c.Locals(principalKey).(*models.Profile)
	return profile
}
