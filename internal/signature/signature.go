// Package signature renders the finished HTML e-mail signature preview from
// a template's styling fields plus the per-person display fields. Rendering
// is a pure transformation with no I/O.
package signature

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Default styling constants. These are configuration values baked into the
// rendered document, not part of the normalization logic.
const (
	DefaultBlue  = "#0455A2"
	DefaultGreen = "#12A84E"

	defaultTextColor = "#000000"
	defaultZoom      = 150
	minZoom          = 50
	defaultOffset    = 50

	photoFallback = "linear-gradient(120deg, #222, #444)"
)

// Params carries every input of the renderer. Empty strings mean the field
// was not supplied; nil numeric pointers fall back to the documented
// defaults.
type Params struct {
	Name   string
	Email  string
	Sector string
	UserID string

	// Image is the uploaded photo as a data URI.
	Image        string
	ImageZoom    *int
	ImageOffsetX *int
	ImageOffsetY *int

	BackgroundImage       string
	ContainerBorderColor  string
	ImageBorderColor      string
	DivisionBarColor      string
	CollaboratorNameColor string
	SectorNameColor       string
	CollaboratorInfoColor string
	ContasLogo            string
	IconsColor            string

	// ShowTitle hides the preview banner only when explicitly false.
	ShowTitle *bool
}

var colorTokenPattern = regexp.MustCompile(`#[0-9a-fA-F]{3,8}|rgba?\([^)]+\)`)

// toGradient normalizes a color field into a gradient expression. Values
// already denoting a gradient pass through unchanged, so the normalization
// is idempotent.
func toGradient(value, fallback string) string {
	if value == "" {
		return fmt.Sprintf("linear-gradient(%s, %s)", fallback, fallback)
	}
	if strings.Contains(value, "gradient") {
		return value
	}
	return fmt.Sprintf("linear-gradient(%s, %s)", value, value)
}

// extractColors scans the input for embedded color tokens (hex or rgb/rgba
// forms). With no recognizable token the whole input is treated as a single
// literal color; an absent input yields the fixed default pair.
func extractColors(value string) []string {
	if value == "" {
		return []string{DefaultBlue, DefaultGreen}
	}
	if matches := colorTokenPattern.FindAllString(value, -1); len(matches) > 0 {
		return matches
	}
	return []string{value}
}

// buildStopList renders SVG gradient stops, spreading the colors evenly. A
// single color collapses into two identical stops.
func buildStopList(colors []string) string {
	stops := colors
	if len(stops) == 1 {
		stops = []string{colors[0], colors[0]}
	}

	var b strings.Builder
	for i, color := range stops {
		offset := float64(i) / float64(len(stops)-1)
		fmt.Fprintf(&b, `<stop offset="%s" stop-color="%s" />`, formatOffset(offset), color)
	}
	return b.String()
}

// detailedStops renders the fixed four-stop icon pattern derived from the
// first two extracted colors (offsets 0, 0.16, 0.75 and 1, alternating).
func detailedStops(start, end string) string {
	return fmt.Sprintf(
		`<stop stop-color="%s" /><stop offset="0.16" stop-color="%s" /><stop offset="0.75" stop-color="%s" /><stop offset="1" stop-color="%s" />`,
		start, end, start, end,
	)
}

func formatOffset(offset float64) string {
	return strconv.FormatFloat(offset, 'g', -1, 64)
}

// Render produces the self-contained HTML signature document.
func Render(p Params) (string, error) {
	// Free text is the only untrusted input crossing into markup; it is
	// always escaped for the five reserved HTML characters.
	name := html.EscapeString(p.Name)
	email := html.EscapeString(p.Email)
	sector := html.EscapeString(p.Sector)
	userID := html.EscapeString(p.UserID)

	data := templateData{
		NameDisplay:   orDefault(name, "Nome e 1° sobrenome"),
		EmailDisplay:  orDefault(email, "E-mail"),
		SectorDisplay: orDefault(sector, "Setor"),
		RamalDisplay:  orDefault(userID, "XXX"),
	}

	if p.BackgroundImage != "" {
		data.BackgroundImage = fmt.Sprintf("url('%s')", p.BackgroundImage)
	} else {
		data.BackgroundImage = "none"
	}

	data.ContainerBorder = toGradient(p.ContainerBorderColor, DefaultBlue)

	// The paired borders fall back to an explicit two-color list.
	data.ImageBorder = toGradient(orDefault(p.ImageBorderColor, DefaultBlue+", "+DefaultGreen), "")
	data.DivisionBar = toGradient(orDefault(p.DivisionBarColor, DefaultGreen+", "+DefaultBlue), "")

	data.NameColor = orDefault(p.CollaboratorNameColor, defaultTextColor)
	data.SectorColor = orDefault(p.SectorNameColor, defaultTextColor)

	iconColors := extractColors(p.IconsColor)
	data.IconStart = iconColors[0]
	data.IconEnd = data.IconStart
	if len(iconColors) > 1 {
		data.IconEnd = iconColors[1]
	}
	data.IconStops = buildStopList(iconColors)
	data.IconStopsDetailed = detailedStops(data.IconStart, data.IconEnd)

	data.InfoColor = orDefault(p.CollaboratorInfoColor, data.IconStart)

	if p.Image != "" {
		data.Photo = fmt.Sprintf("url('%s')", p.Image)
	} else {
		data.Photo = photoFallback
	}

	zoom := defaultZoom
	if p.ImageZoom != nil {
		zoom = *p.ImageZoom
	}
	if zoom < minZoom {
		zoom = minZoom
	}
	data.ImageZoom = zoom
	data.OffsetX = offsetOrDefault(p.ImageOffsetX)
	data.OffsetY = offsetOrDefault(p.ImageOffsetY)

	logoSrc := p.ContasLogo
	if logoSrc == "" {
		logoSrc = defaultLogoDataURI
	}
	if logoSrc != "" {
		data.LogoImg = fmt.Sprintf(`<img src="%s" alt="Logo" />`, logoSrc)
	}

	if p.ShowTitle == nil || *p.ShowTitle {
		data.TitleBlock = `<h2 class="preview-title">Pre-visualizacao</h2>`
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute signature template: %w", err)
	}
	return buf.String(), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func offsetOrDefault(v *int) int {
	if v == nil {
		return defaultOffset
	}
	return *v
}
