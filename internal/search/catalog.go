package search

// DefaultCatalog is the documentation catalog compiled into the site.
// Order matters: it is the final tie-breaker when ranking results.
var DefaultCatalog = []SearchEntry{
	// Getting Started
	{ID: "1", Title: "Getting Started", Section: "Overview", SectionID: "getting-started", Preview: "TypeScript SDK for the Agentium Network API...", Type: TypeGuide, Keywords: []string{"intro", "introduction", "start", "begin", "overview"}},
	{ID: "2", Title: "What is Agentium SDK?", Section: "Overview", SectionID: "getting-started", Preview: "Unified interface for identity, credentials, and AI agents", Type: TypeGuide, Keywords: []string{"about", "what", "sdk", "agentium"}},

	// Core Concepts
	{ID: "3", Title: "AgentiumClient", Section: "Core Concepts", SectionID: "core-concepts", Preview: "Main class for interacting with Agentium API...", Type: TypeConcept, Keywords: []string{"client", "class", "main", "api"}},
	{ID: "4", Title: "DID (Decentralized Identifier)", Section: "Core Concepts", SectionID: "core-concepts", Preview: "Unique cryptographically verifiable identifier for agents", Type: TypeConcept, Keywords: []string{"did", "decentralized", "identifier", "identity"}},
	{ID: "5", Title: "Identity Connection Flow", Section: "Core Concepts", SectionID: "core-concepts", Preview: "How authentication and identity linking works", Type: TypeConcept, Keywords: []string{"flow", "auth", "authentication", "connect"}},

	// Installation
	{ID: "6", Title: "Installation", Section: "Setup", SectionID: "installation", Preview: "Install the SDK via npm, yarn, pnpm, or pip...", Type: TypeGuide, Keywords: []string{"install", "setup", "npm", "yarn", "pnpm", "pip", "package"}},
	{ID: "7", Title: "TypeScript Installation", Section: "Setup", SectionID: "installation", Preview: "npm install @semiotic-labs/agentium-sdk", Type: TypeGuide, Keywords: []string{"typescript", "ts", "npm", "node", "javascript", "js"}},
	{ID: "8", Title: "Python Installation", Section: "Setup", SectionID: "installation", Preview: "pip install agentium-sdk", Type: TypeGuide, Keywords: []string{"python", "pip", "pypi", "py"}},

	// Quick Start
	{ID: "9", Title: "Quick Start", Section: "Tutorial", SectionID: "quick-start", Preview: "Initialize the client and start building in 5 minutes", Type: TypeGuide, Keywords: []string{"quick", "start", "tutorial", "begin", "first", "hello"}},
	{ID: "10", Title: "Connect Google Identity", Section: "Quick Start", SectionID: "quick-start", Preview: "Connect a Google identity using JWT token", Type: TypeGuide, Keywords: []string{"google", "oauth", "jwt", "signin", "login"}},
	{ID: "11", Title: "Environment Configuration", Section: "Quick Start", SectionID: "quick-start", Preview: "Set up AGENTIUM_BASE_URL and other environment variables", Type: TypeGuide, Keywords: []string{"env", "environment", "config", "configuration", "variables"}},

	// API Reference
	{ID: "12", Title: "connectGoogleIdentity()", Section: "API Reference", SectionID: "api-reference", Preview: "Connect a Google identity using JWT token...", Type: TypeMethod, Keywords: []string{"google", "connect", "identity", "jwt", "oauth"}},
	{ID: "13", Title: "exchangeApiKey()", Section: "API Reference", SectionID: "api-reference", Preview: "Exchange API key for JWT tokens (M2M auth)...", Type: TypeMethod, Keywords: []string{"api", "key", "exchange", "m2m", "machine", "token"}},
	{ID: "14", Title: "connectWalletIdentity()", Section: "API Reference", SectionID: "api-reference", Preview: "Connect wallet via SIWE (Sign-In with Ethereum)", Type: TypeMethod, Keywords: []string{"wallet", "siwe", "ethereum", "eth", "connect", "eip4361"}},
	{ID: "15", Title: "verifyCredential()", Section: "API Reference", SectionID: "api-reference", Preview: "Verify a W3C Verifiable Credential with Ed25519", Type: TypeMethod, Keywords: []string{"verify", "credential", "vc", "w3c", "ed25519"}},
	{ID: "16", Title: "refreshSession()", Section: "API Reference", SectionID: "api-reference", Preview: "Refresh JWT access tokens before expiry", Type: TypeMethod, Keywords: []string{"refresh", "session", "token", "jwt", "expiry"}},
	{ID: "17", Title: "issueCredential()", Section: "API Reference", SectionID: "api-reference", Preview: "Issue a new Verifiable Credential", Type: TypeMethod, Keywords: []string{"issue", "credential", "vc", "create", "mint"}},
	{ID: "39", Title: "validateCaip2()", Section: "API Reference", SectionID: "api-reference", Preview: "Validate a CAIP-2 chain identifier such as eip155:84532", Type: TypeMethod, Keywords: []string{"caip", "caip2", "chain", "validate", "eip155"}},

	// Verifiable Credentials
	{ID: "18", Title: "Verifiable Credentials", Section: "Security", SectionID: "verifiable-credentials", Preview: "W3C VCs with Ed25519 signatures issued as JWTs", Type: TypeGuide, Keywords: []string{"vc", "verifiable", "credentials", "w3c", "jwt", "ed25519"}},
	{ID: "19", Title: "Ed25519 Signatures", Section: "Security", SectionID: "verifiable-credentials", Preview: "Native cryptographic signature verification", Type: TypeConcept, Keywords: []string{"ed25519", "signature", "crypto", "cryptography", "sign", "verify"}},
	{ID: "20", Title: "JWT Credentials", Section: "Security", SectionID: "verifiable-credentials", Preview: "Credentials encoded as JSON Web Tokens", Type: TypeConcept, Keywords: []string{"jwt", "json", "web", "token", "credential"}},

	// Telemetry
	{ID: "21", Title: "Telemetry", Section: "Observability", SectionID: "telemetry", Preview: "Flexible event forwarding from WASM to JavaScript", Type: TypeGuide, Keywords: []string{"telemetry", "observability", "logging", "tracing", "events", "wasm"}},
	{ID: "22", Title: "Event Callbacks", Section: "Observability", SectionID: "telemetry", Preview: "Subscribe to SDK events with custom handlers", Type: TypeConcept, Keywords: []string{"events", "callbacks", "handlers", "subscribe", "listener"}},
	{ID: "23", Title: "Structured Tracing", Section: "Observability", SectionID: "telemetry", Preview: "Console and custom output for debugging", Type: TypeConcept, Keywords: []string{"tracing", "debug", "console", "log", "output"}},

	// Advanced
	{ID: "24", Title: "Advanced Configuration", Section: "Advanced", SectionID: "advanced", Preview: "Custom pipelines, environment configs, and more...", Type: TypeConcept, Keywords: []string{"advanced", "config", "configuration", "custom", "pipeline"}},
	{ID: "25", Title: "Custom Base URL", Section: "Advanced", SectionID: "advanced", Preview: "Configure custom API endpoints", Type: TypeConcept, Keywords: []string{"url", "endpoint", "base", "custom", "api"}},
	{ID: "26", Title: "Error Handling", Section: "Advanced", SectionID: "advanced", Preview: "Handle API errors and edge cases gracefully", Type: TypeGuide, Keywords: []string{"error", "errors", "handling", "exception", "catch", "try"}},

	// Languages & Technologies
	{ID: "27", Title: "TypeScript SDK", Section: "Languages", SectionID: "getting-started", Preview: "@semiotic-labs/agentium-sdk for TypeScript/JavaScript", Type: TypeGuide, Keywords: []string{"typescript", "ts", "javascript", "js", "node", "npm"}},
	{ID: "28", Title: "Python SDK", Section: "Languages", SectionID: "getting-started", Preview: "agentium-sdk for Python with Rust-powered cryptography", Type: TypeGuide, Keywords: []string{"python", "py", "pip", "rust", "pyo3"}},
	{ID: "29", Title: "Rust Cryptography", Section: "Core", SectionID: "core-concepts", Preview: "Native Ed25519 operations via PyO3 bindings", Type: TypeConcept, Keywords: []string{"rust", "crypto", "cryptography", "pyo3", "native", "bindings", "wasm", "webassembly"}},
	{ID: "30", Title: "WASM Runtime", Section: "Core", SectionID: "core-concepts", Preview: "WebAssembly runtime for browser and Node.js", Type: TypeConcept, Keywords: []string{"wasm", "webassembly", "browser", "runtime", "web"}},

	// Authentication Methods
	{ID: "31", Title: "Google OAuth", Section: "Authentication", SectionID: "api-reference", Preview: "Sign in with Google using OAuth 2.0 JWT tokens", Type: TypeGuide, Keywords: []string{"google", "oauth", "signin", "login", "authentication"}},
	{ID: "32", Title: "SIWE (Sign-In with Ethereum)", Section: "Authentication", SectionID: "api-reference", Preview: "EIP-4361 authentication with Ethereum wallets", Type: TypeGuide, Keywords: []string{"siwe", "ethereum", "wallet", "eip4361", "metamask", "web3"}},
	{ID: "33", Title: "M2M Authentication", Section: "Authentication", SectionID: "api-reference", Preview: "Machine-to-machine auth with API keys", Type: TypeGuide, Keywords: []string{"m2m", "machine", "api", "key", "server", "backend"}},
	{ID: "34", Title: "API Keys", Section: "Authentication", SectionID: "api-reference", Preview: "Generate and exchange API keys for tokens", Type: TypeGuide, Keywords: []string{"api", "key", "keys", "token", "generate", "exchange"}},

	// Blockchain & Web3
	{ID: "35", Title: "CAIP-2 Chain Identifiers", Section: "Blockchain", SectionID: "core-concepts", Preview: "Standard format for identifying blockchain networks, e.g. eip155:84532 for Base Sepolia", Type: TypeConcept, Keywords: []string{"caip", "chain", "blockchain", "network", "identifier"}},
	{ID: "36", Title: "Wallet Integration", Section: "Web3", SectionID: "api-reference", Preview: "Connect Ethereum and other EVM wallets", Type: TypeGuide, Keywords: []string{"wallet", "ethereum", "evm", "metamask", "connect", "web3"}},

	// Async/Sync
	{ID: "37", Title: "Async/Await Support", Section: "API", SectionID: "api-reference", Preview: "Full async/await support for non-blocking operations", Type: TypeConcept, Keywords: []string{"async", "await", "promise", "asynchronous", "non-blocking"}},
	{ID: "38", Title: "Sync API", Section: "API", SectionID: "api-reference", Preview: "Synchronous alternatives for simple use cases", Type: TypeConcept, Keywords: []string{"sync", "synchronous", "blocking", "simple"}},
}
