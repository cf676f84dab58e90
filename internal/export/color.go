package export

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColor  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbColor  = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9.]+)\s*)?\)$`)
	namedCSS  = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
	fontChars = regexp.MustCompile(`[^\p{L}\p{N} \-]`)
)

// cssColor passes through hex, rgb(a) and named colors and replaces anything
// else with fallback.
func cssColor(s, fallback string) string {
	s = strings.TrimSpace(s)
	if hexColor.MatchString(s) || rgbColor.MatchString(s) || namedCSS.MatchString(s) {
		return s
	}
	return fallback
}

func cssFont(s string) string {
	s = strings.TrimSpace(fontChars.ReplaceAllString(s, ""))
	if s == "" {
		return "Inter"
	}
	return s
}

// parseColor understands #rgb, #rrggbb, #rrggbbaa and rgb()/rgba(). Alpha is
// composited over base so the result is always opaque.
func parseColor(s string, base, fallback color.RGBA) color.RGBA {
	s = strings.TrimSpace(s)
	var c color.RGBA
	alpha := 1.0

	switch {
	case hexColor.MatchString(s):
		h := s[1:]
		if len(h) == 3 {
			h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		}
		v, _ := strconv.ParseUint(h[:6], 16, 32)
		c = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
		if len(h) == 8 {
			a, _ := strconv.ParseUint(h[6:], 16, 8)
			alpha = float64(a) / 255
		}
	case rgbColor.MatchString(s):
		m := rgbColor.FindStringSubmatch(s)
		c = color.RGBA{R: channel(m[1]), G: channel(m[2]), B: channel(m[3]), A: 255}
		if m[4] != "" {
			if a, err := strconv.ParseFloat(m[4], 64); err == nil && a >= 0 && a <= 1 {
				alpha = a
			}
		}
	case s == "transparent":
		return base
	default:
		return fallback
	}

	if alpha < 1 {
		c = blend(c, base, alpha)
	}
	return c
}

func channel(s string) uint8 {
	v, _ := strconv.Atoi(s)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func blend(top, base color.RGBA, alpha float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*alpha + float64(b)*(1-alpha) + 0.5)
	}
	return color.RGBA{R: mix(top.R, base.R), G: mix(top.G, base.G), B: mix(top.B, base.B), A: 255}
}

func darken(c color.RGBA, f float64) color.RGBA {
	return blend(color.RGBA{A: 255}, c, f)
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)
