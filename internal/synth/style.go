package synth

import "siteforge/internal/ir"

// styleProps is the fixed style-to-appearance table. Styles not listed here
// produce no override and inherit the theme.
func styleProps(style ir.Style) map[string]any {
	switch style {
	case ir.StyleMinimal:
		return map[string]any{
			"background": "#ffffff",
			"color":      "#1a1a1a",
			"spacing":    "airy",
		}
	case ir.StyleBold:
		return map[string]any{
			"background": "#111827",
			"color":      "#f9fafb",
			"accent":     "#f59e0b",
		}
	case ir.StyleElegant:
		return map[string]any{
			"background": "#faf7f2",
			"color":      "#2d2a26",
			"fontFamily": "serif",
		}
	case ir.StyleCreative:
		return map[string]any{
			"background": "linear-gradient(135deg, #6366f1, #ec4899)",
			"color":      "#ffffff",
		}
	default:
		return nil
	}
}

// mergeProps overlays src onto dst, allocating as needed. Later keys win.
func mergeProps(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
