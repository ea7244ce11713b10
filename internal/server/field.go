package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharunr07/folio/internal/particle"
)

// maxSeedParticles bounds a single seed response. Browsers scan links
// pairwise, so larger sets are not drawable anyway.
const maxSeedParticles = 2000

type fieldQuery struct {
	Width   float64 `form:"width" binding:"required,gt=0,lte=8192"`
	Height  float64 `form:"height" binding:"required,gt=0,lte=8192"`
	Density float64 `form:"density" binding:"omitempty,gt=0,lte=100"`
	Variant string  `form:"variant"`
	Seed    int64   `form:"seed"`
}

// handleField answers with a freshly seeded particle set for a viewport.
func (s *Server) handleField(c *gin.Context) {
	var q fieldQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be positive numbers up to 8192, density up to 100"})
		return
	}
	variant, err := particle.ParseVariant(q.Variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Density == 0 {
		q.Density = s.cfg.Page.Density
	}
	if q.Density <= 0 {
		q.Density = particle.DefaultDensity
	}
	if n := particle.Count(q.Width, q.Height, q.Density); n > maxSeedParticles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "surface too dense", "count": n, "max": maxSeedParticles})
		return
	}

	f, err := particle.New(particle.Config{
		Width:   q.Width,
		Height:  q.Height,
		Density: q.Density,
		Variant: variant,
		Seed:    q.Seed,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}
