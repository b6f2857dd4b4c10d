package posts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/content/queries"
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/pkg/cli"
	"github.com/StevenGabule/portfolio/pkg/markdown/render"
	"github.com/spf13/cobra"
)

type options struct {
	dir   string
	plain bool
}

func (o *options) painter(cmd *cobra.Command) cli.Painter {
	p := cli.NewPainter(cmd.OutOrStdout())
	p.Plain = o.plain

	return p
}

// NewCommand builds the "posts" command tree: list, show and check.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Inspect the blog posts the site serves",
	}

	cmd.PersistentFlags().StringVar(&opts.dir, "dir", env.GetEnvVarOr("ENV_POSTS_DIR", env.DefaultPostsDir), "posts directory")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "disable coloured output")

	cmd.AddCommand(
		newListCommand(opts),
		newShowCommand(opts),
		newCheckCommand(opts),
	)

	return cmd
}

func newListCommand(opts *options) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the listing view, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := content.Load(opts.dir)
			if err != nil {
				return err
			}

			p := opts.painter(cmd)
			filters := queries.PostFilters{Category: content.Category(category), Search: search}
			result := queries.Listing(store.All(), filters)

			if result.Featured != nil {
				p.Magentaln("Featured: " + describe(*result.Featured))
			}

			if result.Empty {
				p.Warningln("No articles found")
				return nil
			}

			for _, post := range result.Posts {
				p.Println(describe(post))
			}

			p.Grayln(fmt.Sprintf("%d of %d posts", len(result.Posts), store.Len()))

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category filter (All, Tutorial, Business, Process)")
	cmd.Flags().StringVar(&search, "q", "", "case-insensitive search over title and excerpt")

	return cmd
}

func newShowCommand(opts *options) *cobra.Command {
	var blocks bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Render a post as HTML, or print its parsed blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := content.Load(opts.dir)
			if err != nil {
				return err
			}

			post, err := store.BySlug(args[0])
			if err != nil {
				return err
			}

			p := opts.painter(cmd)
			p.Cyanln(post.Title)
			p.Grayln(post.FormattedDate() + " · " + post.ReadingTime)
			p.Blueln(post.Category.Label() + " · " + strings.Join(post.Tags, ", "))

			if !blocks {
				p.Println(string(render.HTML(post.Blocks())))
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(render.Elements(post.Blocks()))
		},
	}

	cmd.Flags().BoolVar(&blocks, "blocks", false, "print the parsed elements as JSON")

	return cmd
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate every post in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := content.Load(opts.dir)
			if err != nil {
				return fmt.Errorf("posts check failed: %w", err)
			}

			p := opts.painter(cmd)

			for _, c := range store.Categories() {
				p.Println(fmt.Sprintf("%-10s %d", c.Label, c.Count))
			}

			p.Successln(fmt.Sprintf("%d posts are valid (version %s)", store.Len(), store.Version()))

			return nil
		},
	}
}

func describe(post content.Post) string {
	return fmt.Sprintf("%s  [%s] %s (%s)", post.Slug, post.Category, post.Title, post.FormattedDate())
}
