package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/export"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// Domain describes one record type the console manages
type Domain[T any] struct {
	Name    string
	Short   string
	Sheet   string
	Service func() services.Service[T]
	Columns []export.Column[T]
}

// DomainCmd creates the command group of one domain
func DomainCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   d.Name,
		Short: d.Short,
	}
	cmd.AddCommand(
		listCmd(app, d),
		getCmd(app, d),
		createCmd(app, d),
		updateCmd(app, d),
		deleteCmd(app, d),
		actionCmd(app, d),
		bulkCmd(app, d),
		exportCmd(app, d),
	)
	return cmd
}

// listFlags are the filter options shared by list and export
type listFlags struct {
	filters []string
	search  string
	sortBy  string
	desc    bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.filters, "filter", "f", nil, "Field filter as key=value (repeatable)")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Free-text search")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Sort field")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
}

func (f *listFlags) build() (dto.Filters, error) {
	filters := dto.Filters{}
	for _, raw := range f.filters {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", raw)
		}
		filters[strings.TrimSpace(key)] = value
	}
	if f.search != "" {
		filters[dto.FilterSearch] = f.search
	}
	if f.sortBy != "" {
		filters[dto.FilterSortBy] = f.sortBy
		if f.desc {
			filters[dto.FilterSortOrder] = "desc"
		} else {
			filters[dto.FilterSortOrder] = "asc"
		}
	}
	return filters, nil
}

func listCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	var (
		flags listFlags
		page  int
		limit int
		table bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", d.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := flags.build()
			if err != nil {
				return err
			}
			resp, err := d.Service().List(app.Ctx, dto.ListParams{Page: page, Limit: limit, Filters: filters})
			if err != nil {
				return err
			}
			if err := envelopeError(resp.Error); err != nil {
				return err
			}
			if table {
				return printTable(cmd.OutOrStdout(), d.Columns, resp.Data, resp.Pagination)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&page, "page", helpers.DefaultPage, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", helpers.DefaultPageSize, "Page size")
	cmd.Flags().BoolVarP(&table, "table", "t", false, "Print a table instead of JSON")
	return cmd
}

func getCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := d.Service().Get(app.Ctx, args[0])
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
}

func createCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create --file record.json",
		Short: "Create a record from a JSON file (- reads stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return fmt.Errorf("failed to parse record: %w", err)
			}
			resp, err := d.Service().Create(app.Ctx, item)
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding the record")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func updateCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	var (
		sets []string
		file string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Apply a partial update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := buildPatch(cmd.InOrStdin(), file, sets)
			if err != nil {
				return err
			}
			if len(patch) == 0 {
				return errors.New("nothing to update, pass --set or --file")
			}
			resp, err := d.Service().Update(app.Ctx, args[0], patch)
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field assignment key=value; JSON values are decoded (repeatable)")
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding the partial record")
	return cmd
}

func deleteCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := d.Service().Delete(app.Ctx, args[0])
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
}

func actionCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "do <id> <action>",
		Short: "Run a lifecycle or engagement action on a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := buildPatch(cmd.InOrStdin(), "", sets)
			if err != nil {
				return err
			}
			resp, err := d.Service().Do(app.Ctx, args[0], models.Action(args[1]), payload)
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Action payload field key=value (repeatable)")
	return cmd
}

func bulkCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk <operation> <id>...",
		Short: "Apply one action, or delete, to several records",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := d.Service().Bulk(app.Ctx, models.Action(args[0]), args[1:])
			return writeResult(cmd.OutOrStdout(), resp, err)
		},
	}
}

func exportCmd[T any](app *AppContext, d Domain[T]) *cobra.Command {
	var (
		flags listFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "export --out file.xlsx",
		Short: "Export every matching record to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := flags.build()
			if err != nil {
				return err
			}
			rows, err := collectAll(app, d.Service(), filters)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := export.WriteXLSX(f, d.Sheet, d.Columns, rows); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", out, err)
			}

			app.Logger.Info().Str("domain", d.Name).Int("rows", len(rows)).Str("file", out).Msg("Export written")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", len(rows), d.Name, out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination .xlsx file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// collectAll pages through the listing at the maximum page size
func collectAll[T any](app *AppContext, svc services.Service[T], filters dto.Filters) ([]T, error) {
	params := dto.ListParams{Page: 1, Limit: helpers.MaxPageSize, Filters: filters}
	var rows []T
	for {
		resp, err := svc.List(app.Ctx, params)
		if err != nil {
			return nil, err
		}
		if err := envelopeError(resp.Error); err != nil {
			return nil, err
		}
		rows = append(rows, resp.Data...)
		if params.Page >= resp.Pagination.TotalPages {
			return rows, nil
		}
		params.Page++
	}
}

func writeResult[T any](w io.Writer, resp dto.APIResponse[T], err error) error {
	if err != nil {
		return err
	}
	if err := printJSON(w, resp); err != nil {
		return err
	}
	return envelopeError(resp.Error)
}

// envelopeError turns a failed envelope into a command error so the process exits non-zero
func envelopeError(detail *dto.ErrorDetail) error {
	if detail == nil {
		return nil
	}
	return detail
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable[T any](w io.Writer, columns []export.Column[T], rows []T, page dto.PaginationInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = strings.ToUpper(c.Header)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = fmt.Sprint(c.Value(row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d total)\n", page.Page, page.TotalPages, page.Total)
	return err
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return raw, nil
}

// buildPatch merges a JSON file and key=value assignments, the assignments winning
func buildPatch(stdin io.Reader, file string, sets []string) (dto.Patch, error) {
	patch := dto.Patch{}
	if file != "" {
		raw, err := readInput(stdin, file)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &patch); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
	}
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected key=value", s)
		}
		patch[strings.TrimSpace(key)] = parseValue(value)
	}
	return patch, nil
}

// parseValue decodes JSON literals (numbers, booleans, objects) and keeps anything else as a string
func parseValue(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
