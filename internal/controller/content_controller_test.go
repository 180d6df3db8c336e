package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unclebandit/campaign-copy-backend/internal/config"
	"github.com/unclebandit/campaign-copy-backend/internal/controller"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
	"github.com/unclebandit/campaign-copy-backend/internal/service"
)

// --- Mock Generator ---

type MockGenerator struct {
	niche string
}

func (m *MockGenerator) Generate(_ context.Context, niche string) model.CampaignContent {
	m.niche = niche
	content, _ := service.SynthesizeFallback(niche)
	return content
}

func TestGenerateContentHandler(t *testing.T) {
	gen := &MockGenerator{}
	ctrl := &controller.ContentController{Generator: gen}

	b, _ := json.Marshal(map[string]interface{}{"niche": "Yoga Retreats"})
	req := httptest.NewRequest("POST", "/campaign-content", bytes.NewReader(b))
	w := httptest.NewRecorder()

	ctrl.GenerateContent(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if gen.niche != "Yoga Retreats" {
		t.Errorf("expected niche to reach generator, got %q", gen.niche)
	}
	if res["headline"] != "Mastering Yoga Retreats in 2024" {
		t.Errorf("unexpected headline %v", res["headline"])
	}
	benefits, ok := res["benefits"].([]interface{})
	if !ok || len(benefits) != 3 {
		t.Fatalf("expected 3 benefits, got %v", res["benefits"])
	}
	for _, key := range []string{"subheadline", "socialProof", "ctaText", "ctaLink"} {
		if s, _ := res[key].(string); s == "" {
			t.Errorf("expected %s to be a non-empty string", key)
		}
	}
}

func TestGenerateContentInvalidBody(t *testing.T) {
	ctrl := &controller.ContentController{Generator: &MockGenerator{}}

	req := httptest.NewRequest("POST", "/campaign-content", strings.NewReader("{niche:"))
	w := httptest.NewRecorder()

	ctrl.GenerateContent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateContentWithRealGeneratorFallback(t *testing.T) {
	gen := service.NewContentGenerator(config.ProviderConfig{}, config.GeneratorConfig{}, nil, nil)
	ctrl := &controller.ContentController{Generator: gen}

	req := httptest.NewRequest("POST", "/campaign-content", strings.NewReader(`{"niche":"Facebook Running Ads"}`))
	w := httptest.NewRecorder()

	ctrl.GenerateContent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var content model.CampaignContent
	if err := json.NewDecoder(w.Body).Decode(&content); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if content.Headline != "The Proven Framework for Facebook Running Ads" {
		t.Errorf("unexpected headline %q", content.Headline)
	}
	if len(content.Benefits) != 3 || content.CtaLink == "" {
		t.Errorf("content violates invariant: %+v", content)
	}
}

func TestThemesHandler(t *testing.T) {
	ctrl := &controller.ContentController{}

	req := httptest.NewRequest("GET", "/themes", nil)
	w := httptest.NewRecorder()

	ctrl.Themes(w, req)

	var res struct {
		ButtonColors     []model.ColorToken `json:"button_colors"`
		BackgroundColors []model.ColorToken `json:"background_colors"`
		Default          model.DesignConfig `json:"default"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(res.ButtonColors) != 8 {
		t.Errorf("expected 8 button colors, got %d", len(res.ButtonColors))
	}
	if len(res.BackgroundColors) != 5 {
		t.Errorf("expected 5 background colors, got %d", len(res.BackgroundColors))
	}
	if res.ButtonColors[0].BgClass != "bg-slate-900" {
		t.Errorf("unexpected first button color %+v", res.ButtonColors[0])
	}
	if res.Default.BgColor != "bg-white" {
		t.Errorf("unexpected default background %q", res.Default.BgColor)
	}
}
