// Package docs carries the OpenAPI document served by the swagger UI
// middleware. The spec is embedded so the binary is self-contained: the
// server never depends on a docs file being present next to the executable.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
