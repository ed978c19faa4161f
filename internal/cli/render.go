package cli

import (
	"context"
	output "github.com/ArjenSchwarz/go-output/v2"
)

func (rt *runtime) outputFormat() output.Format {
	switch rt.format {
	case formatJSON:
		return output.JSON
	case formatMarkdown:
		return output.Markdown
	default:
		return output.Table
	}
}

// render writes one table per call in the selected format.
func (rt *runtime) render(ctx context.Context, title string, rows []map[string]any, keys ...string) error {
	doc := output.New().
		Table(title, rows, output.WithKeys(keys...)).
		Build()

	out := output.NewOutput(
		output.WithFormat(rt.outputFormat()),
		output.WithWriter(output.NewStdoutWriter()),
	)

	return out.Render(ctx, doc)
}
