package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuniko/biscuit/di"
	"github.com/yuniko/biscuit/fetch"
	"github.com/yuniko/biscuit/lib/logger"
	"golang.org/x/exp/slog"
)

var (
	cookieArgs []string
	headerArgs []string
	outputPath string
	debugMode  bool
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "fetch an url, stored cookies travel with the request",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if debugMode {
			slog.SetDefault(slog.New(logger.NewConsoleHandler(slog.LevelDebug)))
		}
		return get(args[0], outputPath)
	},
}

func get(target, output string) error {
	u, err := url.Parse(target)
	if err != nil {
		return err
	}

	fetcher := di.MustResolve[fetch.Fetch]()

	for _, flag := range cookieArgs {
		name, value, ok := strings.Cut(strings.TrimSpace(flag), "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid cookie format: %q (expected 'name=value')", flag)
		}
		fetcher.SetCookie(name, value, u.Hostname())
	}

	headers := make(map[string]string, len(headerArgs))
	for _, flag := range headerArgs {
		name, value, ok := strings.Cut(flag, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid header format: %q (expected 'name=value')", flag)
		}
		headers[name] = strings.TrimSpace(value)
	}

	res, err := fetcher.Get(target, headers)
	if err != nil {
		return err
	}

	logger.Debugf("%v %v", res.StatusCode, target)
	for name, value := range fetcher.GetCookies() {
		logger.Debugf("cookie %s=%s", name, value)
	}

	if output == "" {
		fmt.Println(res.String())
		return nil
	}
	return os.WriteFile(output, res.Body, 0644)
}

func init() {
	getCmd.Flags().StringArrayVarP(&cookieArgs, "cookie", "b", nil, "pre-set cookie for the url host (name=value, repeatable)")
	getCmd.Flags().StringArrayVarP(&headerArgs, "header", "H", nil, "extra request header (name=value, repeatable)")
	getCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the body to file instead of stdout")
	getCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "output the response status and stored cookies")
	rootCmd.AddCommand(getCmd)
}
