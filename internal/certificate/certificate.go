// Package certificate renders the course-completion certificate as a
// printable HTML document.
package certificate

import (
	"html/template"
	"io"
	"time"
)

type Data struct {
	LearnerName string
	CourseName  string
	IssuedOn    string
}

// Render writes the certificate for the named learner.
func Render(w io.Writer, learnerName string, issuedAt time.Time) error {
	return tmpl.Execute(w, Data{
		LearnerName: learnerName,
		CourseName:  "Vedic Mathematics Course",
		IssuedOn:    issuedAt.Format("January 2, 2006"),
	})
}

var tmpl = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Certificate of Completion</title>
<style>
  body { font-family: Georgia, serif; background: #f7f3ec; margin: 0; }
  .certificate {
    max-width: 760px; margin: 48px auto; padding: 64px;
    background: #fffdf8; border: 10px double #b08d57; text-align: center;
  }
  h1 { font-size: 2.2em; letter-spacing: 2px; margin-bottom: 0; }
  .name { font-size: 1.8em; margin: 28px 0 8px; border-bottom: 1px solid #b08d57; display: inline-block; padding: 0 32px 4px; }
  .course { font-size: 1.2em; font-style: italic; }
  .date { margin-top: 40px; color: #6b5b3e; }
</style>
</head>
<body>
<div class="certificate">
  <h1>Certificate of Completion</h1>
  <p>This certifies that</p>
  <div class="name">{{.LearnerName}}</div>
  <p>has successfully completed the</p>
  <div class="course">{{.CourseName}}</div>
  <p class="date">Issued on {{.IssuedOn}}</p>
</div>
</body>
</html>
`))
