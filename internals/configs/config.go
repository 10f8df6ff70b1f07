package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Placeholder credentials shipped in .env.example. The payment adapter refuses
// to make network calls while these are still in place.
const (
	PlaceholderZohoOrgID      = "REPLACE_WITH_YOUR_ORGANIZATION_ID"
	PlaceholderZohoGatewayKey = "REPLACE_WITH_YOUR_GATEWAY_KEY"
	PlaceholderZohoSaltKey    = "REPLACE_WITH_YOUR_SALT_KEY"
)

var (
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	PaymentProvider string // "zoho" | "midtrans"

	ZohoOrgID       string
	ZohoGatewayKey  string
	ZohoSaltKey     string
	ZohoEnvironment string // "sandbox" | "production"

	MidtransServerKey string
	MidtransUseProd   bool

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	FeeIndividual int
	FeeTeam       int

	BasePublicURL string

	SheetsSpreadsheetID      string
	GoogleServiceAccountJSON string

	SectionDetails map[string]bool
)

// LoadEnv reads .env when present and fills the package-level config vars.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminEmail = GetEnv("ADMIN_EMAIL")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")

	PaymentProvider = GetEnv("PAYMENT_PROVIDER", "zoho")

	ZohoOrgID = GetEnv("ZOHO_ORG_ID", PlaceholderZohoOrgID)
	ZohoGatewayKey = GetEnv("ZOHO_GATEWAY_KEY", PlaceholderZohoGatewayKey)
	ZohoSaltKey = GetEnv("ZOHO_SALT_KEY", PlaceholderZohoSaltKey)
	ZohoEnvironment = GetEnv("ZOHO_ENVIRONMENT", "sandbox")

	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	MidtransUseProd = getEnvBool("MIDTRANS_USE_PROD", false)

	EmailJSServiceID = GetEnv("EMAILJS_SERVICE_ID")
	EmailJSTemplateID = GetEnv("EMAILJS_TEMPLATE_ID")
	EmailJSPublicKey = GetEnv("EMAILJS_PUBLIC_KEY")

	FeeIndividual = getEnvInt("FEE_INDIVIDUAL", 1)
	FeeTeam = getEnvInt("FEE_TEAM", 1000)

	BasePublicURL = strings.TrimRight(GetEnv("BASE_PUBLIC_URL", "http://localhost:3000"), "/")

	SheetsSpreadsheetID = GetEnv("GOOGLE_SHEETS_SPREADSHEET_ID")
	GoogleServiceAccountJSON = GetEnv("GOOGLE_SERVICE_ACCOUNT_JSON")

	SectionDetails = ParseSectionDetails(GetEnv("SECTION_DETAILS"))

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set, admin endpoints will reject logins")
	}
}

// GetEnv returns a trimmed env var, falling back to defaultValue when unset.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func getEnvInt(key string, def int) int {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// ParseSectionDetails parses "prizes:hidden,team:shown" into a visibility map.
// Sections absent from the value stay visible.
func ParseSectionDetails(raw string) map[string]bool {
	out := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(kv[0]))
		switch strings.ToLower(strings.TrimSpace(kv[1])) {
		case "shown":
			out[name] = true
		case "hidden":
			out[name] = false
		}
	}
	return out
}

// SectionShown reports whether a site section should expose its details.
func SectionShown(name string) bool {
	if v, ok := SectionDetails[strings.ToLower(name)]; ok {
		return v
	}
	return true
}

// ZohoConfigured reports whether real gateway credentials are present.
func ZohoConfigured() bool {
	return ZohoOrgID != "" && ZohoOrgID != PlaceholderZohoOrgID &&
		ZohoGatewayKey != "" && ZohoGatewayKey != PlaceholderZohoGatewayKey &&
		ZohoSaltKey != "" && ZohoSaltKey != PlaceholderZohoSaltKey
}
