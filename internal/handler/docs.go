package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed swagger.yaml
var swaggerSpec []byte

// Minimal Swagger UI page loading the embedded document.
const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Ride Service API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '/api-docs/openapi.yaml', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`

// RegisterDocs mounts the API documentation routes.
func RegisterDocs(router *gin.Engine) {
	router.GET("/api-docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerPage))
	})
	router.GET("/api-docs/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", swaggerSpec)
	})
}
