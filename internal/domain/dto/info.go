package dto

// APIInfo describes the gateway on its root route.
type APIInfo struct {
	Name          string     `json:"name" example:"finance-gateway"`
	Version       string     `json:"version" example:"1.0"`
	Description   string     `json:"description"`
	Documentation string     `json:"documentation" example:"/swagger/index.html"`
	Endpoints     []Endpoint `json:"endpoints"`
}

// Endpoint is one public route listed by APIInfo.
type Endpoint struct {
	Method      string `json:"method" example:"GET"`
	Path        string `json:"path" example:"/v1/currencies"`
	Description string `json:"description"`
}
