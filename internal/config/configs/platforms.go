package configs

// Meta configures the Meta-style graph API fetcher. BaseURL includes the API
// version segment. PageSize caps campaigns per page; MaxPages bounds
// pagination per account to guard against runaway cursors.
type Meta struct {
	BaseURL  string `env:"BASE_URL" envDefault:"https://graph.facebook.com/v23.0"`
	PageSize int    `env:"PAGE_SIZE" envDefault:"1000"`
	MaxPages int    `env:"MAX_PAGES" envDefault:"10"`
}

// GoogleAds configures the Google-style structured-query API fetcher.
// Credentials and tokens are not configured here: they live in the
// platform_settings table so operators can rotate them without a deploy.
type GoogleAds struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://googleads.googleapis.com/v21"`
}
