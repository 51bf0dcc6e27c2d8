package services

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"social-bridge/models"
)

//go:embed prompts/post.txt
var postPromptTemplate string

//go:embed prompts/image.txt
var imagePromptTemplate string

var (
	funcs      = template.FuncMap{"join": strings.Join}
	postPrompt = template.Must(template.New("post").Funcs(funcs).Parse(postPromptTemplate))
	imgPrompt  = template.Must(template.New("image").Funcs(funcs).Parse(imagePromptTemplate))
)

type postPromptData struct {
	models.Project
	Trend string
}

type imagePromptData struct {
	models.Project
	Concept string
}

// BuildPostPrompt renders the post prompt. The trend line is only included
// when trend is not blank.
func BuildPostPrompt(project models.Project, trend string) (string, error) {
	var buf bytes.Buffer
	err := postPrompt.Execute(&buf, postPromptData{Project: project, Trend: strings.TrimSpace(trend)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func BuildImagePrompt(project models.Project, concept string) (string, error) {
	var buf bytes.Buffer
	err := imgPrompt.Execute(&buf, imagePromptData{Project: project, Concept: strings.TrimSpace(concept)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
