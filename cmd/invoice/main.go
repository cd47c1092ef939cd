package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/odyssey-erp/invoicing/internal/app"
	"github.com/odyssey-erp/invoicing/internal/masterdata/products"
	"github.com/odyssey-erp/invoicing/internal/sales/invoices"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("load config", slog.Any("error", err))
		return 1
	}

	logger := app.NewLogger(cfg, stderr)

	if len(args) == 0 {
		logger.Error("no invoice lines given",
			slog.String("usage", "invoice KIND:NAME:PRICE[:QTY] ..."),
			slog.String("kinds", strings.Join(products.Kinds(), ",")))
		return 2
	}

	inv := invoices.NewWithSequence(invoices.NewSequence(cfg.FirstNumber))
	for _, arg := range args {
		spec, err := parseLineSpec(arg)
		if err != nil {
			logger.Error("parse line", slog.Any("error", err))
			return 1
		}
		if err := inv.AddProduct(spec.product, spec.quantity); err != nil {
			logger.Error("add line", slog.String("line", arg), slog.Any("error", err))
			return 1
		}
	}

	logger.Info("invoice prepared",
		slog.Int64("number", inv.Number()),
		slog.Int("lines", inv.Len()),
		slog.String("net_total", inv.NetTotal().String()),
		slog.String("tax_total", inv.TaxTotal().String()),
		slog.String("gross_total", inv.GrossTotal().String()))

	if err := inv.PrintIn(stdout, cfg.Language()); err != nil {
		logger.Error("print invoice", slog.Any("error", err))
		return 1
	}
	return 0
}
