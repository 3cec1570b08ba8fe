// Package openapi serves a Swagger UI page for the OpenAPI document huma publishes at /openapi.json.
package openapi

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// SpecURL is where huma serves the generated OpenAPI 3.1 document.
const SpecURL = "/openapi.json"

// swaggerPage renders the Swagger UI shell for the given title and document URL.
func swaggerPage(title, specURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>`+templ.EscapeString(title)+`</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "`+templ.EscapeString(specURL)+`",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`)
		return err
	})
}

// RegisterRoutes adds the Swagger UI endpoints to the Echo instance.
func RegisterRoutes(e *echo.Echo, title string) {
	e.GET("/swagger/index.html", echo.WrapHandler(templ.Handler(swaggerPage(title, SpecURL))))
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
