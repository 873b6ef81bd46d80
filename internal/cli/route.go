package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/jsonrequest"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

func routeCmd() *cobra.Command {
	var project string
	var typ string
	var action string
	var userID int
	var productID int
	var body string
	var format string
	var paths map[string]string

	c := &cobra.Command{
		Use:   "route",
		Short: "Send one request through the application controller",
		Example: `  webpres route --type user --action get_user --user-id 123
  webpres route --json '{"type":"product","action":"get_product","product_id":456}'
  echo '{"type":"unknown"}' | webpres route --json -
  webpres route --json '{"type":"user","action":"get_user","user":{"id":7}}' --json-path user_id='$.user.id'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(project)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = app.cfg.Output.Format
			}

			if cmd.Flags().Changed("json-path") && !cmd.Flags().Changed("json") {
				return fmt.Errorf("--json-path requires --json")
			}

			var raw domain.RawRequest
			if cmd.Flags().Changed("json") {
				b, err := readBody(cmd.InOrStdin(), body)
				if err != nil {
					return err
				}
				decoder, err := requestDecoder(app.decoder, paths)
				if err != nil {
					return err
				}
				raw, err = decoder.Decode(b)
				if err != nil {
					return err
				}
			} else {
				raw = domain.RawRequest{}
				if typ != "" {
					raw[domain.KeyType] = typ
				}
				if action != "" {
					raw[domain.KeyAction] = action
				}
				if cmd.Flags().Changed("user-id") {
					raw[domain.KeyUserID] = userID
				}
				if cmd.Flags().Changed("product-id") {
					raw[domain.KeyProductID] = productID
				}
			}

			out, err := app.controller.HandleRequest(raw)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), raw, out, format)
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&typ, "type", "t", "", "Service type (user|product)")
	c.Flags().StringVarP(&action, "action", "a", "", "Action (get_user|get_product)")
	c.Flags().IntVar(&userID, "user-id", 0, "User id for get_user")
	c.Flags().IntVar(&productID, "product-id", 0, "Product id for get_product")
	c.Flags().StringVar(&body, "json", "", "Raw JSON request body, or - to read it from stdin")
	c.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	c.Flags().StringToStringVar(&paths, "json-path", nil, "Override where a key is read from the JSON body (key=$.expr)")

	for _, f := range []string{"type", "action", "user-id", "product-id"} {
		c.MarkFlagsMutuallyExclusive("json", f)
	}
	return c
}

// requestDecoder returns def, or a decoder reading the overridden keys from
// the given JSONPath expressions.
func requestDecoder(def ports.RequestDecoder, paths map[string]string) (ports.RequestDecoder, error) {
	if len(paths) == 0 {
		return def, nil
	}

	opts := make([]jsonrequest.Option, 0, len(paths))
	for key, expr := range paths {
		if _, ok := jsonrequest.DefaultPaths[key]; !ok {
			return nil, &domain.OpError{
				Op:   "cli.json_path",
				Kind: domain.KindInvalidRequest,
				Err:  fmt.Errorf("unknown key %q (expected type|action|user_id|product_id): %w", key, domain.ErrInvalidRequest),
			}
		}
		if !strings.HasPrefix(strings.TrimSpace(expr), "$") {
			return nil, &domain.OpError{
				Op:   "cli.json_path",
				Kind: domain.KindInvalidRequest,
				Err:  fmt.Errorf("key %s: expression %q must start with $: %w", key, expr, domain.ErrInvalidRequest),
			}
		}
		opts = append(opts, jsonrequest.WithPath(key, strings.TrimSpace(expr)))
	}
	return jsonrequest.NewDecoder(opts...), nil
}

func readBody(stdin io.Reader, arg string) ([]byte, error) {
	if strings.TrimSpace(arg) != "-" {
		return []byte(arg), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read request from stdin: %w", err)
	}
	return b, nil
}

func printResponse(w io.Writer, raw domain.RawRequest, out string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"request":  raw,
			"response": out,
			"routed":   out != domain.InvalidRequestMessage,
		})
	case "text", "":
		_, err := fmt.Fprintln(w, out)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected text|json)", format)
	}
}
