package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"blog-admin/cmd/api/auth"
	"blog-admin/dto"
)

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a blog's active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			blog, err := a.client.ToggleActive(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "inactive"
			if blog.Active {
				state = "active"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Blog %d is now %s.\n", blog.ID, state)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.client.DeleteBlog(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func newUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a cover image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkImageFile(args[0]); err != nil {
				return err
			}
			res, err := a.uploadFile(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.FileURL)
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var (
		limit  int
		active bool
	)
	cmd := &cobra.Command{
		Use:   "import <feed-url>",
		Short: "Create blogs from an RSS/Atom feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ImportFeed(cmd.Context(), dto.ImportFeedRequestDTO{
				FeedURL: args[0],
				Limit:   limit,
				Active:  active,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d, skipped %d.\n", len(res.Imported), len(res.Skipped))
			if len(res.Imported) > 0 {
				if err := renderBlogs(out, res.Imported); err != nil {
					return err
				}
			}
			for _, s := range res.Skipped {
				fmt.Fprintf(out, "skipped %s: %s\n", s.Link, s.Reason)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum feed items to import (server caps it)")
	cmd.Flags().BoolVar(&active, "active", false, "mark imported blogs active")
	return cmd
}

// newTokenCmd 는 JWT_SECRET 으로 관리자 토큰을 발급한다. 서버와 같은 시크릿이 필요하다.
func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an admin token with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := auth.NewJWTManager(os.Getenv("JWT_SECRET"), os.Getenv("JWT_ISSUER"), ttl)
			if err != nil {
				return err
			}
			tok, err := m.Sign(subject, auth.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
