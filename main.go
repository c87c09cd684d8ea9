package main

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/meilin-lab/portfolio/internal/publications"
)

func main() {
	cfg := loadConfig()
	r := setupRouter(cfg)

	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func setupRouter(cfg Config) *gin.Engine {
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"join": strings.Join,
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		search := publications.NewSearch(publications.All())
		search.SetQuery(c.Query("q"))

		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMe":      AboutMe,
			"interests":    ResearchInterests,
			"projects":     Projects,
			"query":        search.Query(),
			"publications": search.Results(),
		})
	})

	// Section fragments swapped in by HTMX tabs
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "entries.html", gin.H{
			"entries": Education,
		})
	})

	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "entries.html", gin.H{
			"entries": Experience,
		})
	})

	// HTMX search box target - returns just the list HTML
	r.GET("/publications", func(c *gin.Context) {
		search := publications.NewSearch(publications.All())
		search.SetQuery(c.Query("q"))

		c.HTML(http.StatusOK, "publication-list.html", gin.H{
			"query":        search.Query(),
			"publications": search.Results(),
		})
	})

	r.GET("/api/publications", func(c *gin.Context) {
		results := publications.Filter(c.Query("q"), publications.All())
		c.JSON(http.StatusOK, gin.H{
			"query":        c.Query("q"),
			"count":        len(results),
			"publications": results,
		})
	})

	return r
}
