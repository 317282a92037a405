// admin.go - privacy-conscious admin and visitor tracking
package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

const adminCookie = "admin_token"

// Middleware to check admin authentication
func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Privacy-conscious visitor tracking middleware. Only full page loads count;
// fragment requests and Do Not Track visitors are skipped.
func (s *server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.store == nil || c.GetHeader("DNT") == "1" || c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}
		s.track(c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path)
		c.Next()
	}
}

func (s *server) recordVisit(ip, userAgent, path string) {
	if err := s.store.RecordVisit(context.Background(), ip, userAgent, path); err != nil {
		s.log.Error().Err(err).Msg("Error recording visitor")
	}
}

// Cleanup old visitor data for privacy compliance
func (s *server) cleanupOldVisitorData(ctx context.Context) {
	retention := time.Duration(s.cfg.RetentionDays) * 24 * time.Hour
	n, err := s.store.Cleanup(ctx, retention)
	if err != nil {
		s.log.Error().Err(err).Msg("Error cleaning up old visitor data")
		return
	}
	if n > 0 {
		s.log.Info().Int64("rows", n).Int("retention_days", s.cfg.RetentionDays).Msg("Privacy cleanup removed old records")
	}
}

// scheduleCleanup runs the privacy cleanup once now and then on the
// configured schedule. The caller stops the returned cron.
func (s *server) scheduleCleanup(ctx context.Context) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(s.cfg.CleanupSchedule, func() { s.cleanupOldVisitorData(ctx) }); err != nil {
		return nil, err
	}
	go s.cleanupOldVisitorData(ctx)
	c.Start()
	return c, nil
}

// Setup all admin routes. Without a configured password the admin area is
// not served at all.
func (s *server) setupAdminRoutes(r *gin.Engine) {
	if s.store == nil || s.cfg.AdminPassword == "" {
		s.log.Warn().Msg("Admin area disabled: set PORTFOLIO_ADMIN_PASSWORD to enable it")
		return
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			s.log.Warn().Str("client", s.store.HashIP(c.ClientIP())).Msg("Failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.log.Info().Str("client", s.store.HashIP(c.ClientIP())).Msg("Admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("Error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-dashboard.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":   stats,
			"cvReady": s.cv.Ready(),
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go s.cleanupOldVisitorData(context.Background())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})
}
