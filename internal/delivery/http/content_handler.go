package http

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"cryptowise/internal/content"
	"cryptowise/internal/domain"
)

var topicPage = template.Must(template.New("topic").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}"{{if .RTL}} dir="rtl"{{end}}>
<head><meta charset="utf-8"><title>CryptoWise - {{.Topic}}</title></head>
<body>
{{.Body}}
</body>
</html>
`))

type topicPageData struct {
	Lang  string
	RTL   bool
	Topic string
	Body  template.HTML
}

// ContentHandler serves translations and the educational topics
type ContentHandler struct {
	respond *Responder
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(respond *Responder) *ContentHandler {
	return &ContentHandler{respond: respond}
}

// Languages lists the supported languages named in the request language
// GET /api/content/languages
func (h *ContentHandler) Languages(c echo.Context) error {
	return SuccessResponse(c, content.Languages(h.respond.Lang(c)))
}

// Translations returns the string table of the request language
// GET /api/content/i18n?lang=ur
func (h *ContentHandler) Translations(c echo.Context) error {
	lang := h.respond.Lang(c)
	return SuccessResponse(c, map[string]interface{}{
		"language": lang,
		"strings":  content.Table(lang),
	})
}

// Topics lists the topic names in menu order
// GET /api/content/topics
func (h *ContentHandler) Topics(c echo.Context) error {
	return SuccessResponse(c, content.Topics())
}

// Topic renders one topic as an HTML page, or raw Markdown with format=markdown
// GET /api/content/topics/:topic
func (h *ContentHandler) Topic(c echo.Context) error {
	lang := h.respond.Lang(c)
	name := c.Param("topic")

	md, err := content.Topic(lang, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundResponse(c, h.respond.Text(c, "not_found"))
		}
		return h.respond.Error(c, err)
	}

	switch c.QueryParam("format") {
	case "markdown", "md":
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	case "", "html":
	default:
		return BadRequestResponse(c, h.respond.Text(c, "unsupported_format"))
	}

	body, err := content.RenderHTML(md)
	if err != nil {
		return h.respond.Error(c, err)
	}

	var page bytes.Buffer
	if err := topicPage.Execute(&page, topicPageData{
		Lang:  lang,
		RTL:   lang != domain.LanguageEnglish,
		Topic: name,
		Body:  template.HTML(body), // rendered from embedded Markdown
	}); err != nil {
		return h.respond.Error(c, err)
	}
	return c.HTMLBlob(http.StatusOK, page.Bytes())
}
