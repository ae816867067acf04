package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/report"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type exportOrdersFlags struct {
	output string
	status string
	from   string
	to     string
	search string
	paid   string
	limit  int
}

func newExportOrdersCmd() *cobra.Command {
	var flags exportOrdersFlags

	cmd := &cobra.Command{
		Use:   "export-orders",
		Short: "Write matching orders to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}

			var (
				orders   repository.OrderRepository
				exporter service.OrderReportExporter
				logger   *slog.Logger
			)

			providers := []any{postgres.NewOrderRepository, report.NewXLSXExporter}

			return runWithDB(cmd.Context(), providers, func(ctx context.Context) error {
				return exportOrders(ctx, orders, exporter, logger, filter, flags.output)
			}, &orders, &exporter, &logger)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default orders-<date> with the report extension)")
	cmd.Flags().StringVar(&flags.status, "status", "", "only orders in this status")
	cmd.Flags().StringVar(&flags.from, "from", "", "first order date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.to, "to", "", "last order date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.search, "search", "", "match customer name, email or order id")
	cmd.Flags().StringVar(&flags.paid, "payment", "", "paid or pending")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of orders (repository default when 0)")

	return cmd
}

func (f exportOrdersFlags) filter() (entity.OrderFilter, error) {
	var filter entity.OrderFilter

	if f.status != "" {
		status, ok := entity.ParseOrderStatus(f.status)
		if !ok {
			return filter, errors.Errorf("unknown status %q", f.status)
		}
		filter.Status = status
	}

	switch strings.ToLower(f.paid) {
	case "":
	case "paid":
		paid := true
		filter.Paid = &paid
	case "pending":
		paid := false
		filter.Paid = &paid
	default:
		return filter, errors.Errorf("payment must be paid or pending, got %q", f.paid)
	}

	if f.from != "" {
		from, err := time.Parse(dateLayout, f.from)
		if err != nil {
			return filter, errors.Wrap(err, "invalid --from")
		}
		filter.From = &from
	}

	if f.to != "" {
		to, err := time.Parse(dateLayout, f.to)
		if err != nil {
			return filter, errors.Wrap(err, "invalid --to")
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	filter.Search = strings.TrimSpace(f.search)
	filter.Limit = f.limit

	return filter, nil
}

func exportOrders(
	ctx context.Context,
	orders repository.OrderRepository,
	exporter service.OrderReportExporter,
	logger *slog.Logger,
	filter entity.OrderFilter,
	output string,
) error {
	list, err := orders.List(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "failed to list orders")
	}

	if output == "" {
		output = "orders-" + time.Now().Format("20060102") + exporter.FileExtension()
	}

	file, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer file.Close()

	if err := exporter.WriteOrders(file, list); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	logger.Info("Orders exported", slog.Int("count", len(list)), slog.String("file", output))
	fmt.Println(output)

	return nil
}
