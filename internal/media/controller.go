package media

import (
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

var client = resty.New()

// allowedMediaHosts limits the proxy to Instagram CDN hosts so it cannot be
// used as an open relay. A host matches when it equals an entry or is a
// subdomain of one; bare suffix matching would let evilinstagram.com through.
var allowedMediaHosts = []string{
	"cdninstagram.com",
	"fbcdn.net",
	"instagram.com",
}

func MountController(router fiber.Router) {
	router.Get("/proxy", ProxyMedia)
}

// ProxyMedia fetches a remote media URL and streams it back with permissive
// CORS headers. Instagram CDN URLs are not loadable from a browser directly,
// the original app proxied them through an edge function for the same reason.
func ProxyMedia(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if err := v.Validate(rawURL, v.Required, is.URL); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "url query parameter must be a valid URL",
		})
	}

	if !IsAllowedMediaURL(rawURL) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "url host is not allowed",
		})
	}

	resp, err := client.R().
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)").
		Get(rawURL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if resp.IsError() {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "upstream returned " + resp.Status(),
		})
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Cache-Control", "public, max-age=3600")
	c.Context().SetContentType(contentType)
	return c.Status(fiber.StatusOK).Send(resp.Body())
}

// IsAllowedMediaURL reports whether the URL points at a whitelisted CDN host.
func IsAllowedMediaURL(rawURL string) bool {
	rest := rawURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	host := rest
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.Index(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	host = strings.ToLower(host)

	for _, allowed := range allowedMediaHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
