package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"crew-planner/internal/database"
	"crew-planner/internal/models"
)

// InjectUser кладёт текущего пользователя из сессии в контекст запроса
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser достаёт пользователя, которого положил InjectUser
func CurrentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	switch u := uVal.(type) {
	case models.User:
		return u, true
	case *models.User:
		return *u, true
	}
	return models.User{}, false
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthAPI — вариант для JSON-клиентов: вместо редиректа на /login
// отвечаем 401, чтобы SPA могла обработать потерю сессии сама.
func RequireAuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется вход"})
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get("role").(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[models.UserRole(roleStr)]; !ok {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
