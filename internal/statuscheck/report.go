package statuscheck

import (
	"fmt"
	"io"
	"strings"
)

// Keys records which provider keys are present in the local environment.
type Keys struct {
	ElevenLabs bool
	Mistral    bool
}

func mark(ok bool, yes, no string) string {
	if ok {
		return "✅ " + yes
	}
	return "❌ " + no
}

// Write prints a human readable report.
func (r *Report) Write(w io.Writer, keys Keys) {
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(w, "🔍 Waifu Maker API Status Checker")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "ElevenLabs API Key: %s\n", mark(keys.ElevenLabs, "Set", "Not set"))
	fmt.Fprintf(w, "Mistral API Key: %s\n", mark(keys.Mistral, "Set", "Not set"))
	fmt.Fprintln(w)

	if !r.Reachable() {
		fmt.Fprintf(w, "❌ %v\n", r.HealthErr)
		fmt.Fprintln(w, "\n💡 To start the backend, run: go run ./cmd/api")
		return
	}

	fmt.Fprintln(w, "✅ Backend is running!")
	fmt.Fprintf(w, "   ElevenLabs configured: %t\n", r.Health.ElevenLabsConfigured)
	fmt.Fprintf(w, "   Mistral configured: %t\n", r.Health.MistralConfigured)
	fmt.Fprintf(w, "   Mistral client initialized: %t\n", r.Health.MistralClientInitialized)
	if len(r.Health.AvailableMistralModels) > 0 {
		fmt.Fprintf(w, "   Available Mistral models: %s\n", strings.Join(r.Health.AvailableMistralModels, ", "))
	}
	if r.Health.MistralModelsError != "" {
		fmt.Fprintf(w, "   Mistral models error: %s\n", r.Health.MistralModelsError)
	}
	fmt.Fprintln(w)

	if r.Voices.OK {
		fmt.Fprintf(w, "✅ ElevenLabs API working! Found %d voices\n", r.Voices.Count)
		if r.Voices.Count > 0 {
			fmt.Fprintf(w, "   First voice: %s (%s)\n", r.Voices.FirstName, r.Voices.FirstID)
		}
	} else {
		fmt.Fprintf(w, "❌ ElevenLabs API error: %d\n", r.Voices.StatusCode)
		if r.Voices.Detail != "" {
			fmt.Fprintf(w, "   Error details: %s\n", r.Voices.Detail)
		}
	}
	fmt.Fprintln(w)

	switch {
	case r.Chat.RateLimited:
		fmt.Fprintln(w, "⚠️  Mistral API rate limited (this is normal)")
		if r.Chat.Detail != "" {
			fmt.Fprintf(w, "   Details: %s\n", r.Chat.Detail)
		}
	case r.Chat.OK:
		fmt.Fprintln(w, "✅ Mistral chat API working!")
	default:
		fmt.Fprintf(w, "❌ Mistral chat API error: %d\n", r.Chat.StatusCode)
		if r.Chat.Detail != "" {
			fmt.Fprintf(w, "   Error details: %s\n", r.Chat.Detail)
		}
	}

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "📋 Summary:")
	fmt.Fprintln(w, "   Backend: ✅ Running")
	fmt.Fprintf(w, "   ElevenLabs: %s\n", mark(r.Voices.OK, "Working", "Issues"))
	fmt.Fprintf(w, "   Mistral: %s\n", mark(r.Chat.OK, "Working", "Issues"))

	if !r.Voices.OK {
		fmt.Fprintln(w, "\n💡 ElevenLabs issues:")
		fmt.Fprintln(w, "   - Check ELEVENLABS_API_KEY in .env")
		fmt.Fprintln(w, "   - Verify your ElevenLabs account has credits")
		fmt.Fprintln(w, "   - Check ElevenLabs service status")
	}
	if !r.Chat.OK {
		fmt.Fprintln(w, "\n💡 Mistral issues:")
		fmt.Fprintln(w, "   - Check MISTRAL_API_KEY in .env")
		fmt.Fprintln(w, "   - Verify your Mistral AI Platform account")
		fmt.Fprintln(w, "   - Check if you've hit rate limits")
		fmt.Fprintln(w, "   - Ensure your API key has proper permissions")
	}
}
