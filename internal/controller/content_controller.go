// internal/controller/content_controller.go
package controller

import (
    "context"
    "encoding/json"
    "net/http"

    "github.com/unclebandit/campaign-copy-backend/internal/model"
)

// ContentGenerator is the single entry point the controller needs.
type ContentGenerator interface {
    Generate(ctx context.Context, niche string) model.CampaignContent
}

type ContentController struct {
    Generator ContentGenerator
}

// GenerateContent answers POST /campaign-content. Generation never fails,
// so only a malformed body yields an error status.
func (c *ContentController) GenerateContent(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Niche string `json:"niche"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    content := c.Generator.Generate(r.Context(), body.Niche)

    writeJSON(w, http.StatusOK, content)
}

// Themes answers GET /themes with the palettes the preview offers.
func (c *ContentController) Themes(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, map[string]interface{}{
        "button_colors":     model.ColorPalette,
        "background_colors": model.BackgroundPalette,
        "default":           model.DefaultDesignConfig(),
    })
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}
