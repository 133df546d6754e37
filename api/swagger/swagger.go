// Package swagger embeds the OpenAPI document served at /openapi.json.
package swagger

import _ "embed"

// Document is the OpenAPI 2.0 description of the HTTP API.
//
//go:embed users.swagger.json
var Document []byte
