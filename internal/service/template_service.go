// internal/service/template_service.go
package service

import (
    "strings"

    "github.com/unclebandit/campaign-copy-backend/internal/model"
)

const (
    TemplateAdvertising = "advertising"
    TemplateGeneric     = "generic"

    emptyNichePlaceholder = "Your Business"
)

// advertisingStems route a niche to the paid-advertising template.
var advertisingStems = []string{"running", "ads", "facebook"}

// SelectTemplate returns the fallback template name for niche.
func SelectTemplate(niche string) string {
    topics := strings.ToLower(niche)
    for _, stem := range advertisingStems {
        if strings.Contains(topics, stem) {
            return TemplateAdvertising
        }
    }
    return TemplateGeneric
}

// SynthesizeFallback builds deterministic local content for niche.
// Every call returns a fresh value.
func SynthesizeFallback(niche string) (model.CampaignContent, string) {
    display := strings.TrimSpace(niche)
    if display == "" {
        display = emptyNichePlaceholder
    }

    tmpl := SelectTemplate(display)
    if tmpl == TemplateAdvertising {
        return model.CampaignContent{
            Headline:    RenderTemplate("The Proven Framework for {niche}", map[string]string{"niche": display}),
            Subheadline: `Stop wasting your budget on low-performing creative. Use the "Precision-First" system to scale to $10k/day profitably.`,
            Benefits: []string{
                "Algorithm-syncing creative strategies",
                "Deep-funnel conversion tracking for iOS 14+",
                "High-velocity testing protocols",
            },
            SocialProof: "Our ROAS went from 1.2 to 4.5 in just three weeks. This is the only system that actually works in 2024.",
            CtaText:     "Get The Scaling Blueprint",
            CtaLink:     "https://facebook.com/ads/manager",
        }, tmpl
    }

    data := map[string]string{"niche": display}
    return model.CampaignContent{
        Headline:    RenderTemplate("Mastering {niche} in 2024", data),
        Subheadline: RenderTemplate("Unlock the hidden potential of your business with our AI-driven {niche} optimization strategy.", data),
        Benefits: []string{
            "Industry-leading conversion frameworks",
            "Automated growth tracking & analytics",
            "Zero-fluff implementation guides",
        },
        SocialProof: "The results were immediate. We saved 40+ hours of manual work every month using this exact framework.",
        CtaText:     "Start Generating Leads",
        CtaLink:     "#",
    }, tmpl
}

func RenderTemplate(template string, data map[string]string) string {
    result := template
    for k, v := range data {
        result = strings.ReplaceAll(result, "{"+k+"}", v)
    }
    return result
}
