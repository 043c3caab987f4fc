package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/cli"
)

func main() {
	cli.Execute()
}
