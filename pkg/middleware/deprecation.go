package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"sekor-bkc/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DeprecatedRoute maps a retired path prefix to its replacement.
type DeprecatedRoute struct {
	OldPrefix    string
	NewPrefix    string
	DeprecatedAt time.Time
	Sunset       time.Time
}

// Deprecation redirects retired prefixes with 307 so the method and body are
// preserved, advertising the replacement via Deprecation, Sunset and Link.
func Deprecation(routes []DeprecatedRoute) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, route := range routes {
			if path != route.OldPrefix && !strings.HasPrefix(path, route.OldPrefix+"/") {
				continue
			}

			target := route.NewPrefix + strings.TrimPrefix(path, route.OldPrefix)
			if c.Request.URL.RawQuery != "" {
				target += "?" + c.Request.URL.RawQuery
			}

			logger.FromContext(c.Request.Context()).Warn("deprecated route %s %s -> %s", c.Request.Method, path, target)

			c.Header("Deprecation", fmt.Sprintf(`date="%s"`, route.DeprecatedAt.UTC().Format("2006-01-02")))
			c.Header("Sunset", route.Sunset.UTC().Format(http.TimeFormat))
			c.Header("Link", fmt.Sprintf(`<%s>; rel="alternate"`, route.NewPrefix))
			c.Redirect(http.StatusTemporaryRedirect, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
