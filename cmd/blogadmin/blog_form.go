package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"blog-admin/dto"
	"blog-admin/models"
)

const messageNotImage = "Please upload a valid image file."

// formFlags 는 create/edit 가 공유하는 플래그 값이다.
type formFlags struct {
	title        string
	summary      string
	image        string
	imageFile    string
	redirectLink string
	active       bool
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "blog title")
	cmd.Flags().StringVar(&f.summary, "summary", "", "text summary")
	cmd.Flags().StringVar(&f.image, "image", "", "cover image URL")
	cmd.Flags().StringVar(&f.imageFile, "image-file", "", "upload a local image and use it as the cover")
	cmd.Flags().StringVar(&f.redirectLink, "redirect-link", "", "link opened when the blog is clicked")
	cmd.Flags().BoolVar(&f.active, "active", false, "show the blog publicly")
	cmd.MarkFlagsMutuallyExclusive("image", "image-file")
}

// patch collects only the flags the user set on cmd.
func (f *formFlags) patch(cmd *cobra.Command) models.BlogPatch {
	var p models.BlogPatch
	changed := cmd.Flags().Changed
	if changed("title") {
		p.Title = &f.title
	}
	if changed("summary") {
		p.TextSummary = &f.summary
	}
	if changed("image") {
		p.Image = &f.image
	}
	if changed("redirect-link") {
		p.RedirectLink = &f.redirectLink
	}
	if changed("active") {
		p.Active = &f.active
	}
	return p
}

// validateForm runs the same checks the server does. A pending image file
// counts as an image.
func validateForm(form models.BlogForm, pendingImageFile bool) error {
	if pendingImageFile && form.Image == "" {
		form.Image = "pending-upload"
	}
	errs := form.Validate()
	if len(errs) == 0 {
		return nil
	}
	return formErrors(models.OrderedErrors(errs))
}

// checkImageFile verifies path exists and sniffs as an image.
func checkImageFile(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return err
	}
	if !isImage(mt) {
		return fmt.Errorf("%s (%s is %s)", messageNotImage, path, mt.String())
	}
	return nil
}

func isImage(mt *mimetype.MIME) bool {
	return strings.HasPrefix(mt.String(), "image/")
}

func (a *app) uploadFile(ctx context.Context, cmd *cobra.Command, path string) (dto.UploadResponseDTO, error) {
	f, err := os.Open(path)
	if err != nil {
		return dto.UploadResponseDTO{}, err
	}
	defer f.Close()

	res, err := a.client.UploadImage(ctx, path, f)
	if err != nil {
		return dto.UploadResponseDTO{}, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Uploaded %s (%s, %s)\n", path, res.MimeType, humanize.IBytes(uint64(res.Size)))
	return res, nil
}

func newCreateCmd(a *app) *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := models.BlogForm{
				Title:        f.title,
				Image:        f.image,
				TextSummary:  f.summary,
				RedirectLink: f.redirectLink,
				Active:       f.active,
			}.Normalize()

			if f.imageFile != "" {
				if err := checkImageFile(f.imageFile); err != nil {
					return err
				}
			}
			if err := validateForm(form, f.imageFile != ""); err != nil {
				return err
			}
			if f.imageFile != "" {
				up, err := a.uploadFile(cmd.Context(), cmd, f.imageFile)
				if err != nil {
					return err
				}
				form.Image = up.FileURL
			}

			blog, err := a.client.CreateBlog(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Blog created successfully!")
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\n", blog.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a blog; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if f.imageFile != "" {
				if err := checkImageFile(f.imageFile); err != nil {
					return err
				}
			}

			current, err := a.client.GetBlog(cmd.Context(), id)
			if err != nil {
				return err
			}
			p := f.patch(cmd)
			merged := p.MergeInto(current.Form()).Normalize()
			if err := validateForm(merged, f.imageFile != ""); err != nil {
				return err
			}
			if f.imageFile != "" {
				up, err := a.uploadFile(cmd.Context(), cmd, f.imageFile)
				if err != nil {
					return err
				}
				p.Image = &up.FileURL
			}
			if p.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to update.")
				return nil
			}

			if _, err := a.client.UpdateBlog(cmd.Context(), id, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Blog updated successfully!")
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid blog id %q", s)
	}
	return id, nil
}
