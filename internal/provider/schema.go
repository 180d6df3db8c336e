package provider

import "github.com/google/generative-ai-go/genai"

// CampaignContentFields lists the required keys of the output object in
// declaration order.
var CampaignContentFields = []string{"headline", "subheadline", "benefits", "socialProof", "ctaText", "ctaLink"}

// CampaignContentSchema is the output contract sent with every request.
func CampaignContentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline": {
				Type:        genai.TypeString,
				Description: "A punchy, attention-grabbing headline.",
			},
			"subheadline": {
				Type:        genai.TypeString,
				Description: "A supporting subheadline highlighting the primary benefit.",
			},
			"benefits": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Exactly three powerful bullet points summarizing key benefits.",
			},
			"socialProof": {
				Type:        genai.TypeString,
				Description: "A short testimonial or social proof snippet.",
			},
			"ctaText": {
				Type:        genai.TypeString,
				Description: "A compelling call to action button text.",
			},
			"ctaLink": {
				Type:        genai.TypeString,
				Description: "The default destination link.",
			},
		},
		Required: append([]string(nil), CampaignContentFields...),
	}
}
