// Package playground implements the API playground: a catalog of SDK methods
// and a mock proxy that answers them with canned, partly input-dependent
// responses.
package playground

// Category groups methods in the playground.
type Category string

const (
	CategoryIdentity    Category = "identity"
	CategoryTokens      Category = "tokens"
	CategoryCredentials Category = "credentials"
	CategoryUtilities   Category = "utilities"
)

// ParamType is the input kind of a method parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamBoolean ParamType = "boolean"
)

// Param describes one method parameter.
type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required"`
	Default     string    `json:"defaultValue,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Method is one callable SDK method. ID is the wire name sent to the proxy;
// Name is the SDK function name.
type Method struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Params      []Param  `json:"parameters"`
}

// Missing returns the names of required parameters that are empty in params.
func (m Method) Missing(params map[string]string) []string {
	var missing []string
	for _, p := range m.Params {
		if p.Required && params[p.Name] == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

const jwtPlaceholder = "eyJhbGciOiJFZERTQSIsInR5cCI6IkpXVCJ9..."

// Methods lists the playground methods in display order.
var Methods = []Method{
	{
		ID:          "connect-google-identity",
		Name:        "connectGoogleIdentity",
		Description: "Connect a Google identity to Agentium. Returns DID and access tokens.",
		Category:    CategoryIdentity,
		Params: []Param{
			{Name: "googleToken", Type: ParamString, Description: "Google OAuth JWT token", Required: true, Placeholder: "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."},
			{Name: "skipAudienceValidation", Type: ParamBoolean, Description: "Skip audience validation (for external OAuth like zkLogin)", Default: "false"},
		},
	},
	{
		ID:          "exchange-api-key",
		Name:        "exchangeApiKey",
		Description: "Exchange an API key for OAuth tokens. Used for M2M authentication.",
		Category:    CategoryTokens,
		Params: []Param{
			{Name: "apiKey", Type: ParamString, Description: "Your Agentium API key", Required: true, Placeholder: "ak_..."},
		},
	},
	{
		ID:          "refresh-token",
		Name:        "refreshToken",
		Description: "Refresh an expired access token using a refresh token.",
		Category:    CategoryTokens,
		Params: []Param{
			{Name: "refreshToken", Type: ParamString, Description: "Refresh token from previous authentication", Required: true, Placeholder: "rt_..."},
		},
	},
	{
		ID:          "fetch-membership-credential",
		Name:        "fetchMembershipCredential",
		Description: "Fetch a verifiable membership credential for the authenticated identity.",
		Category:    CategoryCredentials,
		Params: []Param{
			{Name: "accessToken", Type: ParamString, Description: "Valid access token", Required: true, Placeholder: jwtPlaceholder},
		},
	},
	{
		ID:          "verify-credential",
		Name:        "verifyCredential",
		Description: "Verify a W3C Verifiable Credential with Ed25519 signature.",
		Category:    CategoryCredentials,
		Params: []Param{
			{Name: "credentialJwt", Type: ParamString, Description: "Credential JWT to verify", Required: true, Placeholder: jwtPlaceholder},
		},
	},
	{
		ID:          "validate-caip2",
		Name:        "validateCaip2",
		Description: "Validate a CAIP-2 chain identifier format.",
		Category:    CategoryUtilities,
		Params: []Param{
			{Name: "chainId", Type: ParamString, Description: "CAIP-2 chain identifier to validate", Required: true, Placeholder: "eip155:84532"},
		},
	},
}

// Lookup returns the method with the given wire id.
func Lookup(id string) (Method, bool) {
	for _, m := range Methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}
