package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"social-bridge/helpers"
	"social-bridge/models"
	"social-bridge/services"
	"social-bridge/views"

	"github.com/spf13/cobra"
)

// Drafter is the content API the draft command drives.
type Drafter interface {
	GenerateText(ctx context.Context, project models.Project, trend string) string
	GenerateImage(ctx context.Context, project models.Project, concept string) *string
}

// NewDraftCommand returns the "draft" subcommand. newDrafter is called
// lazily so the command can be registered before config is loaded.
func NewDraftCommand(newDrafter func(ctx context.Context) Drafter) *cobra.Command {
	var (
		projectName string
		trend       string
		withImage   bool
		concept     string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft a post (and optionally an image) for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectType, ok := models.ParseProjectType(projectName)
			if !ok {
				return fmt.Errorf("unknown project %q (want one of: %s)", projectName, projectNames())
			}
			project, _ := models.GetProject(projectType)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			drafter := newDrafter(ctx)

			text := drafter.GenerateText(ctx, project, trend)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, text)
			if text != services.ErrorTextFallback && text != services.FailedTextFallback {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Share:", services.ShareIntentURL(text))
			}

			if !withImage {
				return nil
			}
			if strings.TrimSpace(concept) == "" {
				concept = views.DefaultConcept
			}
			image := drafter.GenerateImage(ctx, project, concept)
			if image == nil {
				return errors.New("no image was generated")
			}
			path, err := helpers.SaveDataURI(*image, outDir)
			if err != nil {
				return fmt.Errorf("save image: %w", err)
			}
			fmt.Fprintln(out, "Image:", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", string(models.ProjectCodex), "project to write about")
	cmd.Flags().StringVarP(&trend, "trend", "t", "", "trending topic to blend in")
	cmd.Flags().BoolVar(&withImage, "image", false, "also generate a matching image")
	cmd.Flags().StringVar(&concept, "concept", "", "visual concept for the image")
	cmd.Flags().StringVar(&outDir, "out", "./public/uploads", "directory for generated images")

	return cmd
}

func projectNames() string {
	names := make([]string, 0, len(models.ProjectTypes))
	for _, t := range models.ProjectTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
