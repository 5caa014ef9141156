package signature

import (
	_ "embed"
	"encoding/base64"
)

// The bundled fallback logo, used whenever a template carries no logo URL.
//
//go:embed assets/logo.png
var defaultLogoPNG []byte

var defaultLogoDataURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(defaultLogoPNG)
