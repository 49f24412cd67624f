package http

import (
	"html/template"
	"net/http"

	"github.com/cipettelens/cipettelens/internal/models"
)

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"pct":   func(v float64) float64 { return v * 100 },
	"deref": func(v *float64) float64 { return *v },
}).Parse(`<html>
<head><title>CI Pipeline Metrics</title></head>
<body>
<h1>CI Pipeline Metrics</h1>
<table border='1'>
<tr><th>Repository</th><th>Avg Duration</th><th>Daily Throughput</th><th>Builds</th><th>Success Rate</th><th>MTTR</th><th>Collected</th></tr>
{{range .}}<tr>
<td>{{.Repository}}</td>
<td>{{if .Duration}}{{printf "%.1f" .Duration.Average}}{{else}}-{{end}}</td>
<td>{{if .Throughput}}{{printf "%.1f" .Throughput.Daily}}{{else}}-{{end}}</td>
<td>{{if .Builds}}{{.Builds.Total}}{{else}}-{{end}}</td>
<td>{{if .Builds}}{{printf "%.0f%%" (pct .Builds.SuccessRate)}}{{else}}-{{end}}</td>
<td>{{if .MTTR}}{{printf "%.1fh" (deref .MTTR)}}{{else}}-{{end}}</td>
<td>{{.Timestamp.Format "2006-01-02 15:04"}}</td>
</tr>{{end}}
</table>
</body>
</html>
`))

// NewDashboardHandler renders an HTML table with the latest snapshot for
// every known repository.
//
// @Summary Dashboard
// @Description HTML dashboard showing the latest metrics per repository
// @Tags dashboard
// @Produce html
// @Success 200 "OK"
// @Failure 500 "Internal Server Error"
// @Router / [get]
func NewDashboardHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		repositories, err := reader.GetRepositories(ctx)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		var rows []models.RepositoryMetrics
		for _, repo := range repositories {
			latest, err := reader.GetLatestByRepository(ctx, repo)
			if err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if latest != nil {
				rows = append(rows, *latest)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		dashboardTmpl.Execute(w, rows)
	}
}
