package swagger

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/supplier-catalog/api-contract"
)

const (
	// swaggerURL is the URL path where the Swagger UI will be served
	swaggerURL = "/docs"

	// SpecYAMLURL serves the contract as written
	SpecYAMLURL = "/docs/openapi.yml"

	// SpecJSONURL serves the loaded contract as JSON
	SpecJSONURL = "/docs/openapi.json"
)

// Register serves the Swagger UI and the API contract. doc is the loaded
// contract; it names the page and backs the JSON rendition.
func Register(r chi.Router, doc *openapi3.T) error {
	specJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}

	title := "API"
	if doc.Info != nil && doc.Info.Title != "" {
		title = doc.Info.Title
	}
	page := []byte(getTemplate(title, SpecYAMLURL))

	r.Get(swaggerURL, serveBytes("text/html; charset=utf-8", page))
	r.Get(SpecYAMLURL, serveBytes("application/yaml", apicontract.GetSpecBytes()))
	r.Get(SpecJSONURL, serveBytes("application/json", specJSON))

	return nil
}

func serveBytes(contentType string, b []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(b)
	}
}

// getTemplate returns the HTML page loading Swagger UI from a CDN
func getTemplate(title, specPath string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="%[1]s" />
  <title>%[1]s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '%[2]s',
      dom_id: '#swagger-ui',
      deepLinking: true,
      tryItOutEnabled: true,
    });
  };
</script>
</body>
</html>
`, html.EscapeString(title), specPath)
}
