package blog

// Config holds the file-based configuration for the content backend.
// These are bootstrap settings loaded from config.yaml before the
// database connection is established.
type Config struct {
	DatabaseFile      string `yaml:"dbfile"`
	Host              string `yaml:"host"`
	BaseURL           string `yaml:"base_url"`
	CORSOrigin        string `yaml:"cors_origin"`
	LogFormat         string `yaml:"log_format"`
	LogLevel          string `yaml:"log_level"`
	CookieExpiry      int    `yaml:"cookie_expiry"`
	AdminPasswordHash string `yaml:"admin_password_hash,omitempty"`
	CookieSecret      []byte `yaml:"-"`
}
