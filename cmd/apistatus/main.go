// Command apistatus checks a running API and its providers.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"waifu-maker/internal/statuscheck"
)

func main() {
	baseURL := flag.String("base-url", statuscheck.DefaultBaseURL, "API base URL")
	envFile := flag.String("env-file", ".env", "dotenv file with provider keys")
	flag.Parse()

	// A missing env file is fine; keys may come from the environment.
	_ = godotenv.Load(*envFile)

	keys := statuscheck.Keys{
		ElevenLabs: os.Getenv("ELEVENLABS_API_KEY") != "",
		Mistral:    os.Getenv("MISTRAL_API_KEY") != "",
	}

	report := statuscheck.New(*baseURL).Run(context.Background())
	report.Write(os.Stdout, keys)

	if !report.Reachable() {
		os.Exit(1)
	}
}
