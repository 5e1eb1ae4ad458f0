package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const landingHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Sina Finance News API</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            max-width: 800px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #333;
            border-bottom: 3px solid #4CAF50;
            padding-bottom: 10px;
        }
        .endpoint {
            background: #e8f5e9;
            padding: 15px;
            margin: 10px 0;
            border-left: 4px solid #4CAF50;
            border-radius: 4px;
        }
        code {
            background: #333;
            color: #4CAF50;
            padding: 2px 8px;
            border-radius: 3px;
            font-family: 'Courier New', monospace;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>📰 Sina Finance News API</h1>
        <p>Looks up Sina Finance news for a given A-share stock symbol.</p>

        <h2>Endpoints</h2>
        <div class="endpoint"><strong>GET /</strong> - this page</div>
        <div class="endpoint"><strong>GET /health</strong> - health check</div>
        <div class="endpoint">
            <strong>GET /news?symbol=sh600000&amp;limit=5</strong><br>
            <small>symbol (required), limit (optional, 1-20, default 5)</small>
        </div>
        <div class="endpoint">
            <strong>POST /news</strong><br>
            <small>body: <code>{"symbol": "sh600000", "limit": 5}</code></small>
        </div>

        <h2>Symbol format</h2>
        <ul>
            <li><strong>Shanghai:</strong> sh + 6 digits, e.g. sh600000</li>
            <li><strong>Shenzhen:</strong> sz + 6 digits, e.g. sz000001</li>
        </ul>
    </div>
</body>
</html>
`

// GetLanding handles GET / with a static informational page.
func (h *NewsHandler) GetLanding(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingHTML))
}
