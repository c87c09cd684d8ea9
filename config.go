package main

import "os"

// Config is read from the environment. A .env file in the working directory
// is loaded first by godotenv/autoload.
type Config struct {
	Port          string
	TemplatesGlob string
	StaticDir     string
	ImagesDir     string
}

func loadConfig() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		TemplatesGlob: getenv("TEMPLATES_GLOB", "templates/*"),
		StaticDir:     getenv("STATIC_DIR", "./static"),
		ImagesDir:     getenv("IMAGES_DIR", "./images"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
