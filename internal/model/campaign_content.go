// internal/model/campaign_content.go
package model

// CampaignContent is the landing-page copy returned to the preview layer.
// A value is either fully populated or not returned at all.
type CampaignContent struct {
    Headline    string   `json:"headline" validate:"required,notblank"`
    Subheadline string   `json:"subheadline" validate:"required,notblank"`
    Benefits    []string `json:"benefits" validate:"len=3,dive,required,notblank"`
    SocialProof string   `json:"socialProof" validate:"required,notblank"`
    CtaText     string   `json:"ctaText" validate:"required,notblank"`
    CtaLink     string   `json:"ctaLink" validate:"required,notblank"`
}
