// internal/model/theme.go
package model

// ColorToken names a colour and the class tokens the preview renders with.
type ColorToken struct {
    Name        string `json:"name"`
    BgClass     string `json:"bg_class"`
    TextClass   string `json:"text_class"`
    BorderClass string `json:"border_class"`
}

type DesignConfig struct {
    BgColor     string `json:"bg_color"`
    BtnColor    string `json:"btn_color"`
    AccentColor string `json:"accent_color"`
    TextColor   string `json:"text_color"`
}

var ColorPalette = []ColorToken{
    newColorToken("Slate", "slate-900"),
    newColorToken("Blue", "blue-600"),
    newColorToken("Indigo", "indigo-600"),
    newColorToken("Emerald", "emerald-600"),
    newColorToken("Rose", "rose-600"),
    newColorToken("Amber", "amber-500"),
    newColorToken("Violet", "violet-600"),
    newColorToken("Zinc", "zinc-800"),
}

var BackgroundPalette = []ColorToken{
    newColorToken("White", "white"),
    newColorToken("Light Slate", "slate-50"),
    newColorToken("Sky", "sky-50"),
    newColorToken("Rose Tint", "rose-50"),
    newColorToken("Stone", "stone-100"),
}

func newColorToken(name, shade string) ColorToken {
    return ColorToken{
        Name:        name,
        BgClass:     "bg-" + shade,
        TextClass:   "text-" + shade,
        BorderClass: "border-" + shade,
    }
}

func DefaultDesignConfig() DesignConfig {
    return DesignConfig{
        BgColor:     "bg-white",
        BtnColor:    "bg-blue-600",
        AccentColor: "text-blue-600",
        TextColor:   "text-slate-900",
    }
}
