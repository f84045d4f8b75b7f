// Package web holds the server-rendered HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtmw "careerinn/internal/platform/jwt"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"inr":   formatINR,
	"title": capitalize,
}

// Templates parses every page template. Pages are addressed by file name, e.g. "home.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// Static returns the embedded /static file system.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Render writes a 200 page with the current user merged into data.
func Render(c *gin.Context, name string, data gin.H) {
	RenderStatus(c, http.StatusOK, name, data)
}

// RenderStatus writes a page with an explicit status code.
func RenderStatus(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if session, ok := jwtmw.CurrentSession(c); ok {
		data["LoggedIn"] = true
		data["CurrentUser"] = session.DisplayName
	}
	c.HTML(status, name, data)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatINR renders rupees with Indian digit grouping, e.g. 320000 -> "₹3,20,000".
func formatINR(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
