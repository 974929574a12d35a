package http

import (
	"html/template"
	"net/http"
)

// Version reported on the documentation page.
const Version = "1.0.1"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
code { background: #f2f2f2; padding: 0.1rem 0.3rem; }
li { margin-bottom: 0.75rem; }
</style>
</head>
<body>
<h1>{{.Title}} <small>v{{.Version}}</small></h1>
<p>{{.Description}}</p>
<h2>Endpoints</h2>
<ul>
<li><code>GET /fia-documents</code> — document listing. Optional query parameters:
<code>season</code>, <code>championship</code>, <code>event</code> (case-insensitive match).</li>
<li><code>GET /download-fia-doc?url=...</code> — download a listed document. The
<code>url</code> parameter is the <code>url</code> field of a previously returned document.</li>
<li><code>GET /get-seasons-available</code> — seasons offered by the portal.</li>
<li><code>GET /get-championships-available?season=...</code> — championships offered by the portal.</li>
<li><code>GET /get-gp-available?season=...</code> — Grand Prix events offered by the portal.</li>
</ul>
<p>Every listing request re-scrapes the FIA document portal; responses are not cached.</p>
</body>
</html>
`))

type indexData struct {
	Title       string
	Version     string
	Description string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, indexData{
		Title:       "FIA Documents API",
		Version:     Version,
		Description: "API for retrieving and downloading FIA Formula 1 documents.",
	})
	if err != nil {
		s.logger().Error("rendering documentation page", "err", err)
	}
}
