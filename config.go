package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
}

func MustLoadConfig() *Config {
	godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return &Config{port}
}
