package mailer

// Theme carries the branding an email is rendered with. Templates take it
// explicitly so rendering stays a pure function of its inputs.
type Theme struct {
	BrandName      string
	Tagline        string
	BrandColor     string
	SecondaryColor string
	DangerColor    string
	TextDark       string
	TextLight      string
	Background     string
	CardBackground string
	BorderColor    string
	LogoURL        string
}

// DefaultTheme is the storefront branding.
func DefaultTheme() Theme {
	return Theme{
		BrandName:      "MyStorX",
		Tagline:        "PREMIUM SHOPPING EXPERIENCE",
		BrandColor:     "#0d6efd",
		SecondaryColor: "#28a745",
		DangerColor:    "#dc3545",
		TextDark:       "#1a1a2e",
		TextLight:      "#6c757d",
		Background:     "#f8f9fa",
		CardBackground: "#ffffff",
		BorderColor:    "#e9ecef",
		LogoURL:        "https://exclusive-jade-kaaf6575xb.edgeone.app/favicon.png",
	}
}
