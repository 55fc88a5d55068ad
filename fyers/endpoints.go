package fyers

// Base hosts. The sandbox cluster shares the API shape of production but
// operates on simulated funds and orders.
const (
	BaseURLProduction = "https://api.fyers.in"
	BaseURLSandbox    = "https://api-t2.fyers.in"
)

// API endpoints
const (
	// Authentication
	EndpointGenerateAuthCode = "/api/v2/generate-authcode"
	EndpointValidateAuthCode = "/api/v2/validate-authcode"

	// Account & portfolio
	EndpointProfile   = "/api/v2/profile"
	EndpointFunds     = "/api/v2/funds"
	EndpointHoldings  = "/api/v2/holdings"
	EndpointPositions = "/api/v2/positions"

	// Orders (shared path for create/modify/list; id-suffixed for cancel)
	EndpointOrders = "/api/v2/orders"

	// Market data
	EndpointHistory     = "/api/v2/history"
	EndpointQuotes      = "/api/v6/quotes/"
	EndpointMarketDepth = "/api/v6/marketDepth/"
)
