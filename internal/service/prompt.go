package service

import "fmt"

// BuildPrompt returns the instruction sent to the provider for niche.
func BuildPrompt(niche string) string {
	return fmt.Sprintf(`Generate a high-converting landing page structure for the niche: %s.
Focus on overcoming customer objections and driving immediate action.
Return exactly three benefits, a short testimonial-style social proof quote and an imperative call to action.`, niche)
}
