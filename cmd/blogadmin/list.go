package main

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"blog-admin/cmd/api/clients/blogclient"
	"blog-admin/dto"
)

const summaryColumnRunes = 60

func newListCmd(a *app) *cobra.Command {
	var (
		search string
		page   int
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blogs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			params := blogclient.ListParams{Page: page, Limit: limit, Search: search}
			res, err := a.client.ListBlogs(ctx, params)
			if err != nil {
				return err
			}

			// 범위를 벗어난 페이지는 마지막 페이지로 다시 조회한다.
			pager := Pager{Page: res.Pagination.Page, TotalPages: res.Pagination.TotalPages}
			if clamped := pager.Clamp(res.Pagination.Page); clamped != res.Pagination.Page {
				params.Page = clamped
				if res, err = a.client.ListBlogs(ctx, params); err != nil {
					return err
				}
				pager = Pager{Page: res.Pagination.Page, TotalPages: res.Pagination.TotalPages}
			}

			out := cmd.OutOrStdout()
			if len(res.Data) == 0 {
				fmt.Fprintln(out, "No blogs found.")
				return nil
			}
			if err := renderBlogs(out, res.Data); err != nil {
				return err
			}
			fmt.Fprintln(out, pageFooter(pager))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title or summary")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "blogs per page")
	return cmd
}

func renderBlogs(w io.Writer, blogs []dto.BlogDTO) error {
	tbl := tablewriter.NewTable(w)
	tbl.Header("ID", "Title", "Image", "Summary", "Active")
	for _, b := range blogs {
		if err := tbl.Append([]string{
			strconv.FormatInt(b.ID, 10),
			b.Title,
			b.Image,
			ellipsis(b.TextSummary, summaryColumnRunes),
			activeMark(b.Active),
		}); err != nil {
			return err
		}
	}
	return tbl.Render()
}

func pageFooter(p Pager) string {
	footer := fmt.Sprintf("Page %d of %d", p.Page, p.TotalPages)
	switch {
	case p.HasPrev() && p.HasNext():
		footer += fmt.Sprintf("  (--page %d / --page %d)", p.Page-1, p.Page+1)
	case p.HasNext():
		footer += fmt.Sprintf("  (next: --page %d)", p.Page+1)
	case p.HasPrev():
		footer += fmt.Sprintf("  (prev: --page %d)", p.Page-1)
	}
	return footer
}

func activeMark(active bool) string {
	if active {
		return "✓"
	}
	return "✗"
}

func ellipsis(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	rs := []rune(s)
	return string(rs[:max-1]) + "…"
}
