// cmd/app.go

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pub-invoicing/internal/api/rest"
	"github.com/pub-invoicing/internal/config"
	"github.com/pub-invoicing/internal/logger"
	"github.com/pub-invoicing/internal/orderfile"
	"github.com/pub-invoicing/pkg/invoice"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newApp(out io.Writer) *cli.App {
	var conf config.Config
	service := invoice.NewOrderService()

	return &cli.App{
		Name:   "pub-invoicing",
		Usage:  "render beer order invoices",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: "log level, overrides LOG_LEVEL"},
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				loaded.LogLevel = c.String("log-level")
			}
			conf = loaded

			return logger.Initialize(conf.LogLevel)
		},
		Commands: []*cli.Command{
			serveCommand(&conf, service),
			invoiceCommand(service),
			budgetCommand(service),
		},
	}
}

func serveCommand(conf *config.Config, service *invoice.OrderService) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the invoice HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Aliases: []string{"a"}, Usage: "net address host:port, overrides ADDRESS"},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("address") {
				conf.Address = c.String("address")
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:              conf.Address,
				Handler:           rest.NewRouter(service, conf.SwaggerEnabled),
				ReadHeaderTimeout: 5 * time.Second,
			}

			return runServer(ctx, server)
		},
	}
}

func runServer(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.String("address", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error while shutting down server: %w", err)
	}

	return nil
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "YAML order file, the built-in sample when empty"}
}

func loadOrderFile(c *cli.Context) (orderfile.OrderFile, error) {
	path := c.String("file")
	if path == "" {
		return orderfile.Sample(), nil
	}

	return orderfile.Load(path)
}

func invoiceCommand(service *invoice.OrderService) *cli.Command {
	return &cli.Command{
		Name:  "invoice",
		Usage: "print the invoice of an order file",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{Name: "pdf", Usage: "also write the invoice as PDF to this path"},
		},
		Action: func(c *cli.Context) error {
			file, err := loadOrderFile(c)
			if err != nil {
				return err
			}

			orders, err := file.Orders.ToBeerOrders()
			if err != nil {
				return err
			}

			text, err := service.GenerateInvoice(file.Pub, orders)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, text)

			path := c.String("pdf")
			if path == "" {
				return nil
			}

			inv, err := invoice.NewInvoice(file.Pub, orders)
			if err != nil {
				return err
			}
			pdf, err := invoice.RenderPDF(inv)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("error while writing invoice pdf: %w", err)
			}

			zap.L().Info("invoice pdf written", zap.String("path", path), zap.Int("size", len(pdf)))

			return nil
		},
	}
}

func budgetCommand(service *invoice.OrderService) *cli.Command {
	return &cli.Command{
		Name:  "budget",
		Usage: "tell whether an order file goes over budget",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{Name: "budget", Aliases: []string{"b"}, Usage: "budget, defaults to the order file's budget"},
		},
		Action: func(c *cli.Context) error {
			file, err := loadOrderFile(c)
			if err != nil {
				return err
			}

			var budget decimal.Decimal
			switch {
			case c.IsSet("budget"):
				budget, err = decimal.NewFromString(c.String("budget"))
				if err != nil {
					return fmt.Errorf("invalid budget %q: %w", c.String("budget"), err)
				}
			case file.Budget != nil:
				budget = *file.Budget
			default:
				return errors.New("no budget given and the order file has none")
			}

			orders, err := file.Orders.ToBeerOrders()
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "is it over budget? %t\n", service.IsOverBudget(orders, budget))

			return nil
		},
	}
}
