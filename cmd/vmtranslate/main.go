package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// A .env file can provide VMSIM_* defaults; absence is fine.
	_ = godotenv.Load()

	Execute()
}
