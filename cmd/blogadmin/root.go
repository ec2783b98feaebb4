package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"blog-admin/cmd/api/clients/blogclient"
	"blog-admin/config"
	"blog-admin/models"
)

// app 은 서브커맨드들이 공유하는 상태다.
type app struct {
	apiURL   string
	token    string
	logLevel string
	client   *blogclient.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "blogadmin",
		Short:         "Manage blog entries through the blog-admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger(config.LoggingConfig{Level: a.logLevel})
			a.client = blogclient.New(a.apiURL, a.token)
		},
	}

	apiURL := os.Getenv(blogclient.EnvAPIURL)
	if apiURL == "" {
		apiURL = blogclient.DefaultBaseURL
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", apiURL, "blog-admin API base URL (env "+blogclient.EnvAPIURL+")")
	root.PersistentFlags().StringVar(&a.token, "token", os.Getenv(blogclient.EnvToken), "admin bearer token (env "+blogclient.EnvToken+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level for HTTP tracing")

	root.AddCommand(
		newListCmd(a),
		newCreateCmd(a),
		newEditCmd(a),
		newToggleCmd(a),
		newDeleteCmd(a),
		newUploadCmd(a),
		newImportCmd(a),
		newTokenCmd(),
	)
	return root
}

// formErrors 는 클라이언트 측 검증 실패 메시지 목록이다.
type formErrors []string

func (e formErrors) Error() string {
	return strings.Join(e, "\n")
}

// errorMessage renders err for the terminal. API errors show the server's
// message and every field error it returned.
func errorMessage(err error) string {
	var apiErr *blogclient.APIError
	if errors.As(err, &apiErr) {
		msgs := []string{apiErr.Error()}
		for _, m := range models.OrderedErrors(apiErr.Fields) {
			if m != apiErr.Message {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "\n")
	}
	return err.Error()
}
